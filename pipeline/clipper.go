// Package pipeline orchestrates the clip operation: fetch, convert, re-host
// images, rewrite links, enrich, publish, persist and notify.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/mwalczak/clipmark"
	"github.com/mwalczak/clipmark/frontmatter"
	"github.com/mwalczak/clipmark/wechat"
)

var _ clipmark.Clipper = (*Clipper)(nil)

// Clipper runs the clip operation end to end. Fetcher and Converter are
// required; the remaining collaborators are optional and skipped when nil.
type Clipper struct {
	Fetcher    clipmark.Fetcher
	Converter  clipmark.Converter
	Uploader   clipmark.Uploader
	Meta       clipmark.MetaExtractor
	Summarizer clipmark.Summarizer
	Publisher  clipmark.Publisher
	Clips      clipmark.ClipStore
	Notifier   clipmark.Notifier
	Logger     *slog.Logger
}

// Clip fetches the article at url and carries it through the whole
// pipeline. Fetch, conversion, publication and persistence failures are
// terminal; image re-hosting, metadata extraction, summarization and
// notifications are best-effort.
func (c *Clipper) Clip(ctx context.Context, url string) (*clipmark.Clip, error) {
	page, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		c.notifyFailed(ctx, url, err)
		return nil, err
	}

	conv, err := c.Converter.Convert(page.CleanedHTML)
	if err != nil {
		c.notifyFailed(ctx, url, err)
		return nil, err
	}

	markdown := conv.Markdown
	if c.Uploader != nil && len(conv.Images) > 0 {
		mapping, err := c.Uploader.UploadImages(ctx, conv.Images)
		if err != nil {
			// Image re-hosting never fails the clip; the document
			// keeps its original links.
			c.logger().Warn("image re-hosting failed", "url", url, "err", err)
		} else {
			markdown = clipmark.RewriteURLs(markdown, mapping)
		}
	}

	fm := c.buildFrontMatter(ctx, url, page, markdown)

	content, err := frontmatter.Compose(fm, markdown)
	if err != nil {
		c.notifyFailed(ctx, url, err)
		return nil, err
	}

	clip := &clipmark.Clip{
		SourceURL: url,
		Title:     page.Title,
		Content:   content,
	}

	if c.Publisher != nil {
		path, err := c.Publisher.Publish(ctx, page.Title, content)
		if err != nil {
			c.notifyFailed(ctx, url, err)
			return nil, err
		}
		clip.NotePath = path
	}

	if c.Clips != nil {
		if err := c.Clips.CreateClip(ctx, clip); err != nil {
			c.notifyFailed(ctx, url, err)
			return nil, err
		}
	}

	if c.Notifier != nil {
		if err := c.Notifier.ClipSucceeded(ctx, page.Title, url); err != nil {
			c.logger().Warn("success notification failed", "url", url, "err", err)
		}
	}

	return clip, nil
}

// buildFrontMatter assembles the document metadata. Every enrichment here
// is best-effort.
func (c *Clipper) buildFrontMatter(ctx context.Context, url string, page *clipmark.Page, markdown string) *clipmark.FrontMatter {
	fm := &clipmark.FrontMatter{
		Title:  page.Title,
		Source: url,
	}

	if c.Meta != nil {
		if meta, err := c.Meta.ExtractMeta(page.RawHTML); err == nil && meta != nil {
			fm.Author = meta.Author
			fm.Date = meta.Date
			fm.Description = meta.Description
		}
	}
	if fm.Date == "" {
		// Platform pages carry the publish date in a script variable.
		fm.Date = wechat.PublishTime(page.RawHTML)
	}

	if c.Summarizer != nil {
		summary, err := c.Summarizer.Summarize(ctx, page.Title, markdown)
		if err != nil {
			c.logger().Warn("summarization failed, publishing without enrichment", "url", url, "err", err)
		} else {
			fm.ApplySummary(summary)
		}
	}

	return fm
}

func (c *Clipper) notifyFailed(ctx context.Context, url string, cause error) {
	if c.Notifier == nil {
		return
	}
	if err := c.Notifier.ClipFailed(ctx, url, cause); err != nil {
		c.logger().Warn("failure notification failed", "url", url, "err", err)
	}
}

func (c *Clipper) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
