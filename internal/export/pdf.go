package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"

	"github.com/mindfulhq/mindful_journal_app/internal/utils/textfmt"
)

// PageConfig sets the PDF canvas size and margins, in points.
type PageConfig struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginLeft   float64
	MarginBottom float64
	MarginRight  float64
}

// DefaultPageConfig is US Letter with 48pt margins on every side.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Width:        612,
		Height:       792,
		MarginTop:    48,
		MarginLeft:   48,
		MarginBottom: 48,
		MarginRight:  48,
	}
}

const (
	pdfFontFamily = "Helvetica"

	titleFontSize = 20
	titleLineH    = 24
	metaFontSize  = 10
	metaLineH     = 14
	bodyFontSize  = 11
	bodyLineH     = 15
	headFontSize  = 14
	headLineH     = 18
	captionSize   = 9
	captionLineH  = 12

	// Vertical gap appended after every placed block.
	blockSpacing = 4

	// Drawn image bounds, points. The height cap keeps portrait photos from
	// monopolizing a page.
	maxImageWidth  = 216
	maxImageHeight = 288

	// Pixel cap for embedded images; larger photos are downscaled before
	// embedding so the document stays small.
	maxEmbedPixels = 600
)

// encodePDF renders the projection as a paginated PDF. Blocks (title line,
// metadata line, body paragraph, photo with caption) are measured before
// placement and moved whole to the next page when they would cross the bottom
// margin. Per-photo decode failures are non-fatal: the caption is still
// rendered and a warning is returned alongside the bytes. The context is
// consulted only between blocks, so cancellation never leaves a partially
// drawn block.
func encodePDF(ctx context.Context, p Projection, cfg PageConfig) ([]byte, []string, error) {
	contentWidth := cfg.Width - cfg.MarginLeft - cfg.MarginRight
	contentHeight := cfg.Height - cfg.MarginTop - cfg.MarginBottom
	if contentWidth <= 0 || contentHeight <= 0 {
		return nil, nil, &RenderError{Stage: StageSetup, Err: fmt.Errorf("page %gx%g leaves no content area inside margins", cfg.Width, cfg.Height)}
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: cfg.Width, Ht: cfg.Height},
	})
	doc.SetTitle(p.ResolvedTitle, true)
	doc.SetCreator("ExportService", true)
	doc.SetMargins(cfg.MarginLeft, cfg.MarginTop, cfg.MarginRight)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	if doc.Err() {
		return nil, nil, &RenderError{Stage: StageSetup, Err: doc.Error()}
	}

	r := &pdfRenderer{
		ctx:          ctx,
		doc:          doc,
		cfg:          cfg,
		tr:           doc.UnicodeTranslatorFromDescriptor(""),
		contentWidth: contentWidth,
		bottom:       cfg.Height - cfg.MarginBottom,
		y:            cfg.MarginTop,
	}

	if err := r.render(p); err != nil {
		return nil, r.warnings, err
	}
	if doc.Err() {
		return nil, r.warnings, &RenderError{Stage: StageDraw, Err: doc.Error()}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, r.warnings, &RenderError{Stage: StageDraw, Err: err}
	}
	return buf.Bytes(), r.warnings, nil
}

type pdfRenderer struct {
	ctx          context.Context
	doc          *fpdf.Fpdf
	cfg          PageConfig
	tr           func(string) string
	contentWidth float64
	bottom       float64
	y            float64
	warnings     []string
}

func (r *pdfRenderer) render(p Projection) error {
	if err := r.textBlock(p.ResolvedTitle, "B", titleFontSize, titleLineH); err != nil {
		return err
	}

	// Metadata lines mirror the Markdown bullets, minus emoji: the core PDF
	// fonts are cp1252 and cannot carry emoji glyphs.
	meta := []string{
		"Created: " + textfmt.ISOTimestamp(p.CreatedAt),
		"Modified: " + textfmt.ISOTimestamp(p.ModifiedAt),
	}
	if p.Mood != nil {
		meta = append(meta, "Mood: "+p.Mood.Label)
	}
	if p.Weather != nil {
		meta = append(meta, fmt.Sprintf("Weather: %s, %s°C", p.Weather.ConditionLabel, textfmt.Decimal1(p.Weather.TempC)))
	}
	if p.Location != nil {
		meta = append(meta, fmt.Sprintf("Location: %s (%.4f, %.4f)", p.Location.DisplayName, p.Location.Lat, p.Location.Lon))
	}
	if len(p.Tags) > 0 {
		meta = append(meta, "Tags: "+strings.Join(p.Tags, ", "))
	}
	favorite := "No"
	if p.IsFavorite {
		favorite = "Yes"
	}
	meta = append(meta, "Favorite: "+favorite)
	meta = append(meta, fmt.Sprintf("Word Count: %d", p.WordCount))
	for _, line := range meta {
		if err := r.textBlock(line, "", metaFontSize, metaLineH); err != nil {
			return err
		}
	}

	r.y += blockSpacing

	// Body: each paragraph is a block; blank lines advance the cursor.
	for _, paragraph := range strings.Split(p.Content, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			r.y += bodyLineH
			continue
		}
		if err := r.textBlock(paragraph, "", bodyFontSize, bodyLineH); err != nil {
			return err
		}
	}

	if len(p.Photos) == 0 {
		return nil
	}
	r.y += blockSpacing
	if err := r.textBlock("Photos", "B", headFontSize, headLineH); err != nil {
		return err
	}
	for i, photo := range p.Photos {
		if err := r.photoBlock(i, photo); err != nil {
			return err
		}
	}
	return nil
}

func (r *pdfRenderer) newPage() {
	r.doc.AddPage()
	r.y = r.cfg.MarginTop
}

// textBlock measures the wrapped text and places it whole, starting a new page
// when the block would cross the bottom margin. A block taller than a full
// page is the one case that flows line by line across pages.
func (r *pdfRenderer) textBlock(text, style string, size, lineHeight float64) error {
	if err := r.ctx.Err(); err != nil {
		return &RenderError{Stage: StageDraw, Err: err}
	}

	r.doc.SetFont(pdfFontFamily, style, size)

	// The translator emits raw cp1252 bytes, which are not valid UTF-8:
	// fed to SplitText directly, any byte >= 0x80 decodes to utf8.RuneError
	// and overruns the 256-entry core font width table. Widen the bytes to
	// one rune each for measuring, then narrow the measured lines back to
	// bytes for drawing.
	lines := r.doc.SplitText(widenCP1252(r.tr(text)), r.contentWidth)
	blockHeight := float64(len(lines)) * lineHeight

	pageContent := r.bottom - r.cfg.MarginTop
	if r.y+blockHeight > r.bottom && blockHeight <= pageContent {
		r.newPage()
	}

	for _, line := range lines {
		if r.y+lineHeight > r.bottom {
			r.newPage()
		}
		r.doc.SetXY(r.cfg.MarginLeft, r.y)
		r.doc.CellFormat(r.contentWidth, lineHeight, narrowCP1252(line), "", 0, "L", false, 0, "")
		r.y += lineHeight
	}
	r.y += blockSpacing
	return nil
}

// widenCP1252 maps each cp1252 byte onto its own rune, yielding a valid UTF-8
// string whose runes all index within the core font width tables.
func widenCP1252(s string) string {
	runes := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		runes[i] = rune(s[i])
	}
	return string(runes)
}

// narrowCP1252 undoes widenCP1252, restoring the raw cp1252 bytes the core
// fonts expect in the content stream.
func narrowCP1252(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = append(b, byte(r))
	}
	return string(b)
}

// photoBlock draws one photo entry: the scaled image followed by its caption
// line, kept together on one page. An undecodable image downgrades to a
// caption-only block plus a warning.
func (r *pdfRenderer) photoBlock(index int, photo PhotoView) error {
	if err := r.ctx.Err(); err != nil {
		return &RenderError{Stage: StageDraw, Err: err}
	}

	caption := fmt.Sprintf("Photo %d", index+1)
	if photo.Caption != nil {
		caption = *photo.Caption
	}
	captionLine := fmt.Sprintf("%s • %s • %dx%d",
		caption, textfmt.HumanBytes(photo.FileSize), photo.Width, photo.Height)

	data := photo.ThumbnailData
	if len(data) == 0 {
		data = photo.ImageData
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		r.warnings = append(r.warnings,
			fmt.Sprintf("photo %d (%s): image could not be decoded, caption rendered without image", index+1, photo.PhotoID))
		return r.textBlock(captionLine, "I", captionSize, captionLineH)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxEmbedPixels || bounds.Dy() > maxEmbedPixels {
		img = imaging.Fit(img, maxEmbedPixels, maxEmbedPixels, imaging.Lanczos)
		bounds = img.Bounds()
	}

	var jpegBuf bytes.Buffer
	if err := imaging.Encode(&jpegBuf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		r.warnings = append(r.warnings,
			fmt.Sprintf("photo %d (%s): image could not be re-encoded, caption rendered without image", index+1, photo.PhotoID))
		return r.textBlock(captionLine, "I", captionSize, captionLineH)
	}

	drawW := float64(bounds.Dx())
	drawH := float64(bounds.Dy())
	if scale := maxImageWidth / drawW; scale < 1 {
		drawW *= scale
		drawH *= scale
	}
	if scale := maxImageHeight / drawH; scale < 1 {
		drawW *= scale
		drawH *= scale
	}

	blockHeight := drawH + blockSpacing + captionLineH
	if r.y+blockHeight > r.bottom {
		r.newPage()
	}

	opts := fpdf.ImageOptions{ImageType: "JPEG"}
	name := "photo-" + photo.PhotoID
	r.doc.RegisterImageOptionsReader(name, opts, &jpegBuf)
	r.doc.ImageOptions(name, r.cfg.MarginLeft, r.y, drawW, drawH, false, opts, 0, "")
	r.y += drawH + blockSpacing

	return r.textBlock(captionLine, "I", captionSize, captionLineH)
}
