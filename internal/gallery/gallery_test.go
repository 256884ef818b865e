package gallery

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bergsving-collective/Ramoti-Website/internal/config"
	"github.com/bergsving-collective/Ramoti-Website/internal/logging"
)

const sampleGallery = `<!DOCTYPE html>
<html>
<head>
    <title>Ramoti Gallery</title>
</head>
<body>
    <main>
        <div class="max-w-7xl mx-auto masonry-grid" id="masonryGrid">
            <div class="gallery-card group" data-category="old">
                <div class="relative overflow-hidden rounded-3xl">
                    <img src="photos/stale.jpg" class="w-full object-cover" alt="Stale" onclick="openLightbox(this.src)" loading="lazy">
                </div>
            </div>
        </div>
    </main>
    <footer>contact@example.com</footer>
</body>
</html>
`

// --- Title tests ---

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"sunset_beach.jpg", "Sunset Beach"},
		{"rice_terraces_ubud.png", "Rice Terraces Ubud"},
		{"IMG_0001.JPG", "Img 0001"},
		{"UPPER_case.png", "Upper Case"},
		{"double__underscore.jpg", "Double Underscore"},
		{"beach.day.webp", "Beach.day"},
		{"noextension", "Noextension"},
		{".hidden", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleFromFilename(tt.name); got != tt.want {
			t.Errorf("TitleFromFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// --- CSV loading tests ---

func TestLoadTags_OrderAndTrimming(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tags.csv",
		"filename,tag\n photo_a.jpg , beach \nphoto_b.jpg,temple\n")

	rows, err := LoadTags(path)
	if err != nil {
		t.Fatalf("LoadTags: %v", err)
	}
	want := []TagRow{
		{Filename: "photo_a.jpg", Tag: "beach"},
		{Filename: "photo_b.jpg", Tag: "temple"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestLoadTags_SkipsEmptyFilenames(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tags.csv",
		"filename,tag\n,beach\nphoto.jpg,temple\n  ,waterfall\n")

	rows, err := LoadTags(path)
	if err != nil {
		t.Fatalf("LoadTags: %v", err)
	}
	if len(rows) != 1 || rows[0].Filename != "photo.jpg" {
		t.Errorf("got %+v, want single photo.jpg row", rows)
	}
}

func TestLoadTags_ColumnsInAnyOrder(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tags.csv",
		"notes,tag,filename\nignored,beach,photo.jpg\n")

	rows, err := LoadTags(path)
	if err != nil {
		t.Fatalf("LoadTags: %v", err)
	}
	if len(rows) != 1 || rows[0] != (TagRow{Filename: "photo.jpg", Tag: "beach"}) {
		t.Errorf("got %+v", rows)
	}
}

func TestLoadTags_HeaderValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing tag column", "filename\nphoto.jpg\n"},
		{"missing filename column", "file,tag\nphoto.jpg,beach\n"},
		{"empty file", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "tags.csv", tt.content)
			_, err := LoadTags(path)
			if err == nil || !strings.Contains(err.Error(), "must have headers") {
				t.Errorf("got %v, want header error", err)
			}
		})
	}
}

func TestLoadTags_NoUsableRows(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"header only", "filename,tag\n"},
		{"only empty filenames", "filename,tag\n,beach\n,temple\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "tags.csv", tt.content)
			_, err := LoadTags(path)
			if err == nil || !strings.Contains(err.Error(), "no rows") {
				t.Errorf("got %v, want no-rows error", err)
			}
		})
	}
}

func TestLoadTags_MissingFile(t *testing.T) {
	if _, err := LoadTags(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for missing CSV")
	}
}

// --- Validation tests ---

func TestValidateTags_CollectsAllOffenders(t *testing.T) {
	rows := []TagRow{
		{Filename: "a.jpg", Tag: "beach"},
		{Filename: "b.jpg", Tag: ""},
		{Filename: "c.jpg", Tag: "temple"},
		{Filename: "d.jpg", Tag: ""},
	}

	err := ValidateTags(rows)
	var missing *MissingTagsError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingTagsError", err)
	}
	want := []string{"b.jpg", "d.jpg"}
	if len(missing.Filenames) != len(want) {
		t.Fatalf("got %v, want %v", missing.Filenames, want)
	}
	for i := range want {
		if missing.Filenames[i] != want[i] {
			t.Errorf("offender %d: got %q, want %q", i, missing.Filenames[i], want[i])
		}
	}
	for _, name := range want {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error text should name %s: %q", name, err.Error())
		}
	}
}

func TestValidateTags_AllTagged(t *testing.T) {
	rows := []TagRow{{Filename: "a.jpg", Tag: "beach"}}
	if err := ValidateTags(rows); err != nil {
		t.Errorf("ValidateTags: %v", err)
	}
}

// --- Card rendering tests ---

func TestRenderCards_DefaultMarkup(t *testing.T) {
	rows := []TagRow{{Filename: "sunset_beach.jpg", Tag: "beach"}}

	got, err := RenderCards(rows, "")
	if err != nil {
		t.Fatalf("RenderCards: %v", err)
	}

	for _, want := range []string{
		`data-category="beach"`,
		`src="photos/sunset_beach.jpg"`,
		`alt="Sunset Beach"`,
		`class="relative overflow-hidden rounded-3xl"`,
		`loading="lazy"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("card missing %s:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, "\n            <div class=\"gallery-card group\"") {
		t.Errorf("card should start with newline and grid indentation:\n%q", got[:40])
	}
	if !strings.HasSuffix(got, "</div>\n") {
		t.Errorf("block should end with closing div and newline:\n%q", got)
	}
}

func TestRenderCards_MultipleRows(t *testing.T) {
	rows := []TagRow{
		{Filename: "a.jpg", Tag: "beach"},
		{Filename: "b.jpg", Tag: "temple"},
	}

	got, err := RenderCards(rows, "")
	if err != nil {
		t.Fatalf("RenderCards: %v", err)
	}
	if n := strings.Count(got, "gallery-card"); n != 2 {
		t.Errorf("got %d cards, want 2", n)
	}
	// Fragments are joined by a newline and each begins with its own.
	if !strings.Contains(got, "</div>\n\n            <div class=\"gallery-card") {
		t.Errorf("cards not joined as expected:\n%s", got)
	}
}

func TestRenderCards_EscapesAttributeText(t *testing.T) {
	rows := []TagRow{{Filename: "a.jpg", Tag: "temples & shrines"}}

	got, err := RenderCards(rows, "")
	if err != nil {
		t.Fatalf("RenderCards: %v", err)
	}
	if !strings.Contains(got, `data-category="temples &amp; shrines"`) {
		t.Errorf("tag not attribute-escaped:\n%s", got)
	}
}

func TestRenderCards_CustomTemplate(t *testing.T) {
	rows := []TagRow{{Filename: "sunset_beach.jpg", Tag: "beach"}}

	got, err := RenderCards(rows, `<li data-tag="{{.Tag}}">{{.Title}}</li>`)
	if err != nil {
		t.Fatalf("RenderCards: %v", err)
	}
	if got != "<li data-tag=\"beach\">Sunset Beach</li>\n" {
		t.Errorf("got %q", got)
	}
}

func TestRenderCards_BadTemplate(t *testing.T) {
	_, err := RenderCards([]TagRow{{Filename: "a.jpg", Tag: "x"}}, "{{.Title")
	if err == nil || !strings.Contains(err.Error(), "parse card template") {
		t.Errorf("got %v, want parse error", err)
	}
}

// --- Splice tests ---

func TestSplice_ReplacesInterior(t *testing.T) {
	cards, err := RenderCards([]TagRow{{Filename: "sunset_beach.jpg", Tag: "beach"}}, "")
	if err != nil {
		t.Fatalf("RenderCards: %v", err)
	}

	got, err := Splice(sampleGallery, cards)
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}

	if strings.Contains(got, "stale.jpg") {
		t.Error("old interior should be replaced")
	}
	if !strings.Contains(got, "photos/sunset_beach.jpg") {
		t.Error("new card missing from output")
	}
	if n := strings.Count(got, anchorOpen); n != 1 {
		t.Errorf("opening marker count = %d, want 1", n)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Error("document prefix not preserved")
	}
	if !strings.Contains(got, "<footer>contact@example.com</footer>") {
		t.Error("document suffix not preserved")
	}
	if !strings.Contains(got, "        </div>\n    </main>") {
		t.Error("closing sequence not preserved")
	}
}

func TestSplice_SecondPassIsIdentical(t *testing.T) {
	cards, err := RenderCards([]TagRow{
		{Filename: "sunset_beach.jpg", Tag: "beach"},
		{Filename: "rice_terraces.png", Tag: "nature"},
	}, "")
	if err != nil {
		t.Fatalf("RenderCards: %v", err)
	}

	first, err := Splice(sampleGallery, cards)
	if err != nil {
		t.Fatalf("first Splice: %v", err)
	}
	second, err := Splice(first, cards)
	if err != nil {
		t.Fatalf("second Splice: %v", err)
	}
	if first != second {
		t.Error("second splice over own output should be byte-identical")
	}
}

func TestSplice_AnchorMissing(t *testing.T) {
	_, err := Splice("<html><body><main></main></body></html>", "cards")
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Errorf("got %v, want ErrAnchorNotFound", err)
	}
}

func TestSplice_ClosingSequenceMissing(t *testing.T) {
	doc := "<main>\n" + anchorOpen + "</div></main>"
	_, err := Splice(doc, "cards")
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Errorf("got %v, want ErrAnchorNotFound", err)
	}
}

func TestSplice_DuplicateAnchor(t *testing.T) {
	doc := sampleGallery + "\n" + anchorOpen + "\n"
	_, err := Splice(doc, "cards")
	if !errors.Is(err, ErrAnchorAmbiguous) {
		t.Errorf("got %v, want ErrAnchorAmbiguous", err)
	}
}

// --- Apply tests ---

func TestApply_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := testTagsConfig(t, dir,
		"filename,tag\nsunset_beach.jpg,beach\nrice_terraces.png,nature\n")

	log := testLogger(t)
	if err := Apply(&cfg, log); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	out := readFile(t, cfg.HTMLPath)
	if !strings.Contains(out, `alt="Sunset Beach"`) {
		t.Error("derived title missing from output")
	}
	if !strings.Contains(out, `data-category="nature"`) {
		t.Error("second row missing from output")
	}
	if strings.Contains(out, "stale.jpg") {
		t.Error("previous card should be gone")
	}
}

func TestApply_Idempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := testTagsConfig(t, dir, "filename,tag\nsunset_beach.jpg,beach\n")

	log := testLogger(t)
	if err := Apply(&cfg, log); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	first := readFile(t, cfg.HTMLPath)

	if err := Apply(&cfg, log); err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	second := readFile(t, cfg.HTMLPath)

	if !bytes.Equal([]byte(first), []byte(second)) {
		t.Error("second run should produce byte-identical output")
	}
}

func TestApply_MissingTagsWriteNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := testTagsConfig(t, dir, "filename,tag\na.jpg,beach\nb.jpg,\nc.jpg,\n")

	before := readFile(t, cfg.HTMLPath)

	err := Apply(&cfg, testLogger(t))
	var missing *MissingTagsError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingTagsError", err)
	}
	if len(missing.Filenames) != 2 {
		t.Errorf("offenders = %v, want b.jpg and c.jpg", missing.Filenames)
	}

	if after := readFile(t, cfg.HTMLPath); after != before {
		t.Error("HTML must not change when validation fails")
	}
}

func TestApply_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := testTagsConfig(t, dir, "filename,tag\nsunset_beach.jpg,beach\n")
	cfg.DryRun = true

	before := readFile(t, cfg.HTMLPath)
	if err := Apply(&cfg, testLogger(t)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if after := readFile(t, cfg.HTMLPath); after != before {
		t.Error("dry run must not modify the HTML file")
	}
}

func TestApply_CustomCardTemplate(t *testing.T) {
	dir := t.TempDir()
	cfg := testTagsConfig(t, dir, "filename,tag\nsunset_beach.jpg,beach\n")
	cfg.CardTemplate = writeFile(t, dir, "card.tmpl",
		`            <figure data-tag="{{.Tag}}">{{.Title}}</figure>`)

	if err := Apply(&cfg, testLogger(t)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	out := readFile(t, cfg.HTMLPath)
	if !strings.Contains(out, `<figure data-tag="beach">Sunset Beach</figure>`) {
		t.Errorf("custom template not applied:\n%s", out)
	}
}

// --- Helpers ---

func testTagsConfig(t *testing.T, dir, csvContent string) config.TagsConfig {
	t.Helper()
	cfg := config.DefaultTagsConfig()
	cfg.CSVPath = writeFile(t, dir, "gallery-tags.csv", csvContent)
	cfg.HTMLPath = writeFile(t, dir, "gallery.html", sampleGallery)
	cfg.ColorMode = config.ColorNever
	return cfg
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	log, err := logging.NewLogger(config.ColorNever, "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}
