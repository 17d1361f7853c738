package feed

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

var ErrNoEntries = errors.New("feed contains no entries")

var audioTypes = map[string]bool{
	"audio/mpeg": true,
	"audio/mp3":  true,
}

// Read parses the feed at feedURL and returns the metadata of its first
// entry. AudioURL is left empty when the entry has no MP3 enclosure.
func (r *implReader) Read(ctx context.Context, feedURL string) (*domain.Episode, error) {
	r.logger.Info(ctx, "Reading feed: %s", feedURL)

	f, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	ep, err := episodeFromFeed(f)
	if err != nil {
		return nil, err
	}

	if ep.AudioURL == "" {
		r.logger.Warn(ctx, "No audio/mpeg enclosure on first entry of %s", feedURL)
	} else {
		r.logger.Info(ctx, "Feed read, episode URL: %s", ep.AudioURL)
	}
	return ep, nil
}

func episodeFromFeed(f *gofeed.Feed) (*domain.Episode, error) {
	if f == nil || len(f.Items) == 0 || f.Items[0] == nil {
		return nil, ErrNoEntries
	}
	item := f.Items[0]

	ep := &domain.Episode{
		PodcastTitle: strings.TrimSpace(f.Title),
		EpisodeTitle: strings.TrimSpace(item.Title),
		ImageURL:     feedImage(f),
		AudioURL:     audioEnclosure(item),
		Description:  htmlToText(firstNonEmpty(item.Description, item.Content)),
		Published:    item.PublishedParsed,
	}
	return ep, nil
}

func feedImage(f *gofeed.Feed) string {
	if f.Image != nil && f.Image.URL != "" {
		return f.Image.URL
	}
	if f.ITunesExt != nil && f.ITunesExt.Image != "" {
		return f.ITunesExt.Image
	}
	return ""
}

// audioEnclosure returns the URL of the first MP3 enclosure of item.
func audioEnclosure(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if isAudioType(enc.Type) {
			return enc.URL
		}
	}
	return ""
}

func isAudioType(declared string) bool {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		mediaType = strings.TrimSpace(declared)
	}
	return audioTypes[strings.ToLower(mediaType)]
}

func htmlToText(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
