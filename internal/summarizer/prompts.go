package summarizer

const (
	summarySystem = "You are assisting in extracting podcast information for a newsletter."
	summaryPrompt = `Provide a short summary of the transcript. Make sure to identify podcast hosts and starring guests.
Include a few details, if mentioned in the transcript, about who the starring guests are.

`

	peopleSystem = "You will be given the transcript of a podcast episode."
	peoplePrompt = `You will be given the transcript of a podcast episode. Please identify the hosts and starring guests (if any).
For example, if the hosts are Micah Sargent and Dan Moren and the guests are Kathy Campbell and Matthew Cassinelli output
"* Hosts: Micah Sargent, Dan Moren
* Guests: Kathy Campbell, Matthew Cassinelli"
If there are no guests, say "* Guests: None".

`

	highlightsSystem = "You are assisting in extracting podcast highlights."
	highlightsPrompt = `Extract and make a list of the key moments from the following podcast transcript.

`
)
