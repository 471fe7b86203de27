// Package content holds the copy of the landing page. The text lives in an
// embedded YAML file so marketing edits never touch Go code.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/decay"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
)

//go:embed site.yaml
var siteYAML []byte

var Module = fx.Module("content",
	fx.Provide(Load),
)

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Card struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Brand struct {
	Name   string `yaml:"name"`
	MadeIn string `yaml:"madeIn"`
}

type Hero struct {
	Badge           string `yaml:"badge"`
	Headline        string `yaml:"headline"`
	HeadlineAccent  string `yaml:"headlineAccent"`
	Subheadline     string `yaml:"subheadline"`
	SubheadlineHTML string `yaml:"-"`
	PrimaryCTA      string `yaml:"primaryCta"`
	SecondaryCTA    string `yaml:"secondaryCta"`
	Footnote        string `yaml:"footnote"`
}

type Problem struct {
	Title       string `yaml:"title"`
	TitleAccent string `yaml:"titleAccent"`
	Cards       []Card `yaml:"cards"`
}

// FlowStep is one row of the missed-call walkthrough in the solution section.
type FlowStep struct {
	Kind  string `yaml:"kind"` // incoming, action, outcome
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
	Time  string `yaml:"time"`
}

type Solution struct {
	Eyebrow     string     `yaml:"eyebrow"`
	Title       string     `yaml:"title"`
	TitleAccent string     `yaml:"titleAccent"`
	Body        string     `yaml:"body"`
	Points      []Card     `yaml:"points"`
	Flow        []FlowStep `yaml:"flow"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Tone  string `yaml:"tone"`
}

type Testimonial struct {
	Quote    string `yaml:"quote"`
	Author   string `yaml:"author"`
	Role     string `yaml:"role"`
	Location string `yaml:"location"`
}

// Initial is the avatar letter shown next to the quote.
func (t Testimonial) Initial() string {
	for _, r := range t.Author {
		return strings.ToUpper(string(r))
	}
	return ""
}

type Proof struct {
	Title        string        `yaml:"title"`
	Subtitle     string        `yaml:"subtitle"`
	Stats        []Stat        `yaml:"stats"`
	Testimonials []Testimonial `yaml:"testimonials"`
}

type Decay struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Points   []decay.Point `yaml:"points"`
}

type Calculator struct {
	Badge          string `yaml:"badge"`
	Title          string `yaml:"title"`
	TitleAccent    string `yaml:"titleAccent"`
	Subtitle       string `yaml:"subtitle"`
	MonthlyLabel   string `yaml:"monthlyLabel"`
	MonthlyCaption string `yaml:"monthlyCaption"`
	YearlyLabel    string `yaml:"yearlyLabel"`
	YearlyCaption  string `yaml:"yearlyCaption"`
}

type FAQItem struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"` // markdown
	AnswerHTML string `yaml:"-"`
}

type FAQ struct {
	Title string    `yaml:"title"`
	Items []FAQItem `yaml:"items"`
}

type CTA struct {
	Title       string   `yaml:"title"`
	TitleAccent string   `yaml:"titleAccent"`
	Body        string   `yaml:"body"`
	CoverTitle  string   `yaml:"coverTitle"`
	Cover       []string `yaml:"cover"`
	CallTitle   string   `yaml:"callTitle"`
	CallLength  string   `yaml:"callLength"`
	Button      string   `yaml:"button"`
	Live        string   `yaml:"live"`
}

type Social struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Href  string `yaml:"href"`
}

type Footer struct {
	Links  []Link   `yaml:"links"`
	Social []Social `yaml:"social"`
}

// Site is the full copy deck of the landing page.
type Site struct {
	Brand      Brand      `yaml:"brand"`
	Nav        []Link     `yaml:"nav"`
	Hero       Hero       `yaml:"hero"`
	Ticker     []string   `yaml:"ticker"`
	Problem    Problem    `yaml:"problem"`
	Solution   Solution   `yaml:"solution"`
	Proof      Proof      `yaml:"proof"`
	Decay      Decay      `yaml:"decay"`
	Calculator Calculator `yaml:"calculator"`
	FAQ        FAQ        `yaml:"faq"`
	CTA        CTA        `yaml:"cta"`
	Footer     Footer     `yaml:"footer"`
}

// Load parses the embedded site content.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes, validates and renders site content from YAML.
func Parse(data []byte) (*Site, error) {
	site := &Site{}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	if err := site.render(goldmark.New()); err != nil {
		return nil, err
	}
	return site, nil
}

// Validate reports every problem with the content at once.
func (s *Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Brand.Name) == "" {
		errs = append(errs, errors.New("brand.name is required"))
	}
	if strings.TrimSpace(s.Hero.Headline) == "" {
		errs = append(errs, errors.New("hero.headline is required"))
	}
	for i, t := range s.Proof.Testimonials {
		if strings.TrimSpace(t.Quote) == "" || strings.TrimSpace(t.Author) == "" {
			errs = append(errs, fmt.Errorf("proof.testimonials[%d] needs a quote and an author", i))
		}
	}
	for i, p := range s.Decay.Points {
		if p.Lift < 0 {
			errs = append(errs, fmt.Errorf("decay.points[%d] has a negative lift", i))
		}
	}
	for i, item := range s.FAQ.Items {
		if strings.TrimSpace(item.Question) == "" || strings.TrimSpace(item.Answer) == "" {
			errs = append(errs, fmt.Errorf("faq.items[%d] needs a question and an answer", i))
		}
	}
	for _, f := range estimator.Fields() {
		if f.Default < f.Min || f.Default > f.Max {
			errs = append(errs, fmt.Errorf("calculator default for %s is outside [%v, %v]", f.Key, f.Min, f.Max))
		}
	}
	return errors.Join(errs...)
}

func (s *Site) render(md goldmark.Markdown) error {
	sub, err := renderInline(md, s.Hero.Subheadline)
	if err != nil {
		return fmt.Errorf("hero.subheadline: %w", err)
	}
	s.Hero.SubheadlineHTML = sub

	for i := range s.FAQ.Items {
		var buf bytes.Buffer
		if err := md.Convert([]byte(s.FAQ.Items[i].Answer), &buf); err != nil {
			return fmt.Errorf("faq.items[%d].answer: %w", i, err)
		}
		s.FAQ.Items[i].AnswerHTML = buf.String()
	}
	return nil
}

// renderInline converts a single markdown paragraph and drops the wrapping <p>.
func renderInline(md goldmark.Markdown, src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return out, nil
}
