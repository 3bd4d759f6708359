package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/sources"
)

// CatalogUI prints catalog pages to a writer. In quiet mode every method is a no-op.
type CatalogUI struct {
	writer io.Writer
	quiet  bool
}

// NewCatalogUI creates a renderer for w.
func NewCatalogUI(w io.Writer, quiet bool) *CatalogUI {
	return &CatalogUI{writer: w, quiet: quiet}
}

func (c *CatalogUI) println(a ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.writer, a...)
}

func (c *CatalogUI) printf(format string, a ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.writer, format, a...)
}

// DatasetCard renders one dataset as a compact card.
func DatasetCard(d catalog.Dataset) string {
	var b strings.Builder
	b.WriteString(Highlight.Render(d.Title))
	b.WriteString(" ")
	b.WriteString(Dim.Render("(" + d.Slug + ")"))
	b.WriteString("\n")

	meta := []string{}
	if d.FileType != "" {
		meta = append(meta, Badge(strings.ToUpper(d.FileType), catalog.FileTypeColor(d.FileType)))
	}
	if src := sources.Detect(d.File); src != nil && sources.IsExternalLink(d.File) {
		meta = append(meta, Badge(src.Name, src.Color))
	}
	meta = append(meta,
		Dim.Render(catalog.FormatFileSize(d.FileSize)),
		Dim.Render(FormatNumber(d.DownloadCount)+" downloads"),
	)
	b.WriteString("  " + strings.Join(meta, " "))

	if desc := strings.TrimSpace(d.Description); desc != "" {
		b.WriteString("\n  " + Truncate(desc, 100))
	}
	if len(d.Categories) > 0 {
		names := make([]string, 0, len(d.Categories))
		for _, cat := range d.Categories {
			names = append(names, cat.Name)
		}
		b.WriteString("\n  " + Muted.Render(strings.Join(names, " · ")))
	}
	return b.String()
}

// PrintDatasetPage prints the visible page and a pager line.
func (c *CatalogUI) PrintDatasetPage(res catalog.Result, p catalog.QueryParams) {
	c.println(Title.Render("Datasets"))
	var filters []string
	if p.Query != "" {
		filters = append(filters, FormatKeyValue("search", strconv.Quote(p.Query)))
	}
	if p.Category != "" {
		filters = append(filters, FormatKeyValue("category", p.Category))
	}
	filters = append(filters, FormatKeyValue("sort", string(p.Sort)))
	c.println(strings.Join(filters, "  "))
	c.println()

	if res.TotalMatched == 0 {
		c.println(FormatStatus("info", "No datasets found. Try adjusting your search or filters."))
		return
	}
	if len(res.Page) == 0 {
		c.println(FormatStatus("warning", fmt.Sprintf("Page %d is out of range (%d page(s) available).", p.Page, res.TotalPages)))
		return
	}
	for _, d := range res.Page {
		c.println(DatasetCard(d))
		c.println()
	}
	c.println(Dim.Render(fmt.Sprintf("Page %d of %d · %d dataset(s)", p.Page, res.TotalPages, res.TotalMatched)))
}

// PrintDatasetList prints a titled list of cards, e.g. featured datasets on the home page.
func (c *CatalogUI) PrintDatasetList(title string, ds []catalog.Dataset) {
	c.println(SectionHeader.Render(title))
	if len(ds) == 0 {
		c.println(Dim.Render("  nothing to show"))
		c.println()
		return
	}
	for _, d := range ds {
		c.println(DatasetCard(d))
	}
	c.println()
}

// PrintDetail prints a dataset page with its source badge and related datasets.
func (c *CatalogUI) PrintDetail(d *catalog.Dataset, related []catalog.Dataset, src *sources.Source, external bool) {
	header := Title.Render(d.Title)
	if d.Description != "" {
		header += "\n" + d.Description
	}
	c.println(DetailBox.Render(header))

	c.println(FormatKeyValue("Slug", d.Slug))
	if d.FileType != "" {
		c.println(FormatKeyValue("Format", Badge(strings.ToUpper(d.FileType), catalog.FileTypeColor(d.FileType))))
	}
	c.println(FormatKeyValue("Size", catalog.FormatFileSize(d.FileSize)))
	c.println(FormatKeyValue("Downloads", FormatNumber(d.DownloadCount)))
	if d.License != "" {
		c.println(FormatKeyValue("License", d.License))
	}
	if author := authorName(d.Author); author != "" {
		c.println(FormatKeyValue("Author", author))
	}
	if !d.CreatedAt.IsZero() {
		c.println(FormatKeyValue("Added", catalog.FormatDate(d.CreatedAt)))
	}
	if !d.UpdatedAt.IsZero() {
		c.println(FormatKeyValue("Updated", catalog.FormatDate(d.UpdatedAt)))
	}
	if tags := d.TagList(); len(tags) > 0 {
		c.println(FormatKeyValue("Tags", strings.Join(tags, ", ")))
	}
	if external && src != nil {
		c.println(FormatKeyValue("Source", Badge(src.Name, src.Color)+" "+Dim.Render(src.Description)))
	}
	if d.File != "" {
		c.println(FormatKeyValue("File", d.File))
	}
	if link := strings.TrimSpace(d.SourceURL); link != "" {
		c.println(FormatKeyValue("Link", link))
	}

	c.println()
	c.println(SectionHeader.Render("Related datasets"))
	if len(related) == 0 {
		c.println(Dim.Render("  no related datasets"))
		return
	}
	for _, r := range related {
		c.printf("  %s %s %s\n", GetBullet(), r.Title, Dim.Render("("+r.Slug+")"))
	}
}

// PrintNotFound prints the dataset not-found state.
func (c *CatalogUI) PrintNotFound(slug string) {
	c.println(ErrorBox.Render(Error.Render("Dataset not found") + "\n" +
		Dim.Render(fmt.Sprintf("No dataset with slug %q. Browse all datasets with `dataidea datasets`.", slug))))
}

// PrintError prints a full-page error message such as a failed catalog load.
func (c *CatalogUI) PrintError(msg string) {
	c.println(ErrorBox.Render(GetCrossMark() + " " + msg))
}

// PrintCategories prints the popular categories and the filtered list with counts.
func (c *CatalogUI) PrintCategories(popular, filtered []catalog.Category, counts map[int]int, query string) {
	c.println(Title.Render("Categories"))
	c.println()
	if query == "" && len(popular) > 0 {
		c.println(SectionHeader.Render("Popular"))
		for _, cat := range popular {
			c.printf("  %s %s %s\n", GetBullet(), Highlight.Render(cat.Name), Dim.Render(countLabel(counts[cat.ID])))
		}
		c.println()
	}

	header := "All categories"
	if query != "" {
		header = fmt.Sprintf("Categories matching %q", query)
	}
	c.println(SectionHeader.Render(header))
	if len(filtered) == 0 {
		c.println(FormatStatus("info", "No categories found."))
		return
	}
	for _, cat := range filtered {
		c.printf("  %s %s %s %s\n", GetBullet(), cat.Name, Dim.Render("("+cat.Slug+")"), Dim.Render(countLabel(counts[cat.ID])))
		if cat.Description != "" {
			c.printf("    %s\n", Muted.Render(Truncate(cat.Description, 90)))
		}
	}
}

// PrintCourses prints the course list with level badges.
func (c *CatalogUI) PrintCourses(courses []catalog.Course) {
	c.println(SectionHeader.Render("Courses"))
	if len(courses) == 0 {
		c.println(Dim.Render("  no courses available"))
		return
	}
	for _, course := range courses {
		line := Highlight.Render(course.Title)
		if course.Level != "" {
			line += " " + Badge(course.Level, catalog.LevelColor(course.Level))
		}
		if course.Duration != "" {
			line += " " + Dim.Render(course.Duration)
		}
		c.println(line)
		if course.Description != "" {
			c.println("  " + Truncate(course.Description, 100))
		}
		if len(course.Skills) > 0 {
			c.println("  " + Muted.Render(strings.Join(course.Skills, " · ")))
		}
		if course.FreeResourcesLink != "" {
			c.println("  " + FormatKeyValue("Free resources", course.FreeResourcesLink))
		}
	}
	c.println()
}

// PrintSource prints the classifier verdict for a URL.
func (c *CatalogUI) PrintSource(rawURL string, src *sources.Source, external bool) {
	if src == nil {
		c.println(FormatStatus("error", fmt.Sprintf("%q is not an absolute URL", rawURL)))
		return
	}
	kind := "internal"
	if external {
		kind = "external"
	}
	c.println(Badge(src.Name, src.Color) + " " + Dim.Render(src.Description))
	c.println(FormatKeyValue("Domain", src.Domain))
	c.println(FormatKeyValue("Link", kind))
}

// PrintSearch prints server-side search results.
func (c *CatalogUI) PrintSearch(query string, results []catalog.Dataset) {
	c.println(Title.Render(fmt.Sprintf("Search results for %q", query)))
	c.println(Dim.Render(fmt.Sprintf("%d dataset(s) found", len(results))))
	c.println()
	for _, d := range results {
		c.println(DatasetCard(d))
		c.println()
	}
}

// PrintDownload reports a download registration. url is where the file lives.
func (c *CatalogUI) PrintDownload(slug, url string, count int, ok bool) {
	if ok {
		c.println(SuccessBox.Render(FormatStatus("success", fmt.Sprintf("Download registered for %s (%s downloads)", Highlight.Render(slug), FormatNumber(count)))))
	} else {
		c.println(FormatStatus("warning", fmt.Sprintf("Could not register the download for %s; showing %s downloads", slug, FormatNumber(count))))
	}
	if url != "" {
		c.println(FormatKeyValue("Download from", url))
	}
}

// ExternalNotice describes an external download for the confirmation dialog.
func ExternalNotice(title, rawURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You're about to download %s from an external source.\n\n", Bold.Render(title))
	if src := sources.Detect(rawURL); src != nil && src.Key != "" {
		fmt.Fprintf(&b, "This dataset is hosted on %s.\n\n", Bold.Render(src.Name))
	} else {
		fmt.Fprintf(&b, "This dataset is hosted externally at %s.\n\n", Bold.Render(sources.DomainFromURL(rawURL)))
	}
	b.WriteString("Please note:\n")
	for _, line := range []string{
		"You will be redirected to an external website",
		"Download speed depends on the external host",
		"We don't control the availability of external files",
		"Please review the source's terms of service",
	} {
		b.WriteString("  • " + line + "\n")
	}
	b.WriteString("\nExternal URL: " + rawURL)
	return b.String()
}

// PrintAbout prints the static about page.
func (c *CatalogUI) PrintAbout() {
	c.println(Title.Render("About DataIdea"))
	c.println(Subtitle.Render("DataIdea is a free library of curated datasets for data science, machine learning and education."))
	c.println()
	for _, f := range aboutFeatures {
		c.printf("%s %s\n  %s\n", GetCheckMark(), Bold.Render(f[0]), Dim.Render(f[1]))
	}
	c.println()
	c.println(SectionHeader.Render("FAQ"))
	for _, f := range aboutFAQ {
		c.printf("%s\n  %s\n", Primary.Render(f[0]), f[1])
	}
	c.println()
	c.println(FormatKeyValue("Contact", "contact@dataidea.com"))
}

var aboutFeatures = [][2]string{
	{"High-Quality Datasets", "All datasets are curated and verified for quality, completeness and usability."},
	{"Free to Download", "Every dataset can be downloaded for free for personal projects, research and education."},
	{"Clear Licensing", "Each dataset carries its license so you know how the data may be used."},
	{"Data Science Ready", "Datasets come in formats ready for analysis, machine learning and visualization."},
}

var aboutFAQ = [][2]string{
	{"How can I use these datasets?", "Datasets are free to download and usable under their respective licenses, shown on each dataset page."},
	{"Can I contribute my own dataset?", "Yes. Contact us with details about your dataset and the team will review it."},
	{"How often are new datasets added?", "The collection is updated regularly; `dataidea home` lists the most recent additions."},
}

func authorName(u catalog.User) string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full != "" {
		return full
	}
	return u.Username
}

func countLabel(n int) string {
	if n == 1 {
		return "1 dataset"
	}
	return fmt.Sprintf("%d datasets", n)
}

// Truncate shortens s to at most n runes, ending with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}

// FormatNumber formats n with thousands separators.
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	str := strconv.Itoa(n)
	if len(str) <= 3 {
		return str
	}
	var b strings.Builder
	for i, r := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
