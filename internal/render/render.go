// Package render builds the content sections of the portfolio page.
package render

import (
	"fmt"
	"time"

	"golang.org/x/net/html"

	"github.com/rdraksharam/portfolio/internal/content"
	"github.com/rdraksharam/portfolio/internal/dom"
)

// Container ids looked up in the page template.
const (
	ExperienceID   = "experience-timeline"
	ProjectsID     = "projects-grid"
	SkillsID       = "skills-grid"
	AchievementsID = "achievements-grid"
	FooterID       = "footer-text"
	NameID         = "person-name"
	TaglineID      = "person-tagline"
)

var (
	experienceColours = []string{"border-blue", "border-green", "border-purple", "border-orange"}
	skillColours      = []string{"cat-blue", "cat-teal", "cat-purple", "cat-orange"}
)

// All runs every section renderer against doc. A container missing from the
// template leaves that section out.
func All(doc *dom.Document, m *content.Model, now time.Time) {
	Person(doc, m.Person)
	Experiences(doc, m.Experiences)
	Projects(doc, m.Projects)
	Skills(doc, m.Skills)
	Achievements(doc, m.Achievements)
	Footer(doc, m.Person, now)
}

// Person fills the hero heading and the document title.
func Person(doc *dom.Document, p content.Person) {
	dom.SetText(doc.ByID(NameID), p.Name)
	dom.SetText(doc.ByID(TaglineID), p.Tagline)
	if titles := doc.ByTag("title"); len(titles) > 0 {
		dom.SetText(titles[0], p.Name+" | Portfolio")
	}
}

// Experiences appends one timeline item per experience.
func Experiences(doc *dom.Document, exps []content.Experience) {
	container := doc.ByID(ExperienceID)
	if container == nil {
		return
	}
	for i, exp := range exps {
		colour := experienceColours[i%len(experienceColours)]
		container.AppendChild(dom.Element("div",
			dom.Class("experience-item", colour, "slide-left"),
			dom.Append(
				dom.Element("div", dom.Class("timeline-dot")),
				dom.Element("div",
					dom.Class("experience-card"),
					dom.Append(
						dom.Element("h3", dom.Class("experience-role"), dom.Text(exp.Role)),
						dom.Element("span", dom.Class("experience-company"), dom.Text(exp.Company)),
						dom.Element("span", dom.Class("experience-period"), dom.Text(exp.Period)),
						dom.Element("p", dom.Class("experience-location"), dom.Text(exp.Location)),
						dom.Element("ul", dom.Each(exp.Achievements, func(a string) *html.Node {
							return dom.Element("li", dom.Text(a))
						})),
						techTags(exp.Technologies),
					),
				),
			),
		))
	}
}

// Projects appends one card per project. The award badge is only emitted
// when the project has one.
func Projects(doc *dom.Document, projects []content.Project) {
	container := doc.ByID(ProjectsID)
	if container == nil {
		return
	}
	for _, p := range projects {
		var award *html.Node
		if p.Award != "" {
			award = dom.Element("span", dom.Class("project-award"), dom.Text(p.Award))
		}
		container.AppendChild(dom.Element("div",
			dom.Class("project-card"),
			dom.Append(
				dom.Element("img",
					dom.Class("project-image"),
					dom.WithAttr("src", p.Image),
					dom.WithAttr("alt", p.Name+" image"),
				),
				dom.Element("div",
					dom.Class("project-content"),
					dom.Append(
						dom.Element("div",
							dom.Class("project-meta"),
							dom.Append(
								dom.Element("span", dom.Class("project-date"), dom.Text(p.Date)),
								award,
							),
						),
						dom.Element("h3", dom.Text(p.Name)),
						dom.Element("p", dom.Text(p.Description)),
						techTags(p.Technologies),
					),
				),
			),
		))
	}
}

// Skills appends one colour-coded block per category.
func Skills(doc *dom.Document, cats []content.SkillCategory) {
	container := doc.ByID(SkillsID)
	if container == nil {
		return
	}
	for i, cat := range cats {
		container.AppendChild(dom.Element("div",
			dom.Class("skill-category", skillColours[i%len(skillColours)]),
			dom.Append(
				dom.Element("h3", dom.Text(cat.Category)),
				dom.Element("div", dom.Class("skill-tags"), dom.Each(cat.Items, func(item string) *html.Node {
					return dom.Element("span", dom.Class("skill-tag"), dom.Text(item))
				})),
			),
		))
	}
}

// Achievements appends one card per achievement.
func Achievements(doc *dom.Document, achievements []content.Achievement) {
	container := doc.ByID(AchievementsID)
	if container == nil {
		return
	}
	for _, a := range achievements {
		container.AppendChild(dom.Element("div",
			dom.Class("achievement-card"),
			dom.Append(
				dom.Element("div",
					dom.Class("achievement-icon"),
					dom.Append(dom.Element("i", dom.Class("fas", a.Icon))),
				),
				dom.Element("h3", dom.Text(a.Title)),
				dom.Element("span", dom.Class("achievement-result"), dom.Text(a.Result)),
				dom.Element("p", dom.Text(a.Description)),
			),
		))
	}
}

// Footer replaces the footer text with the copyright line for now's year.
func Footer(doc *dom.Document, person content.Person, now time.Time) {
	dom.SetText(doc.ByID(FooterID), fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), person.Name))
}

func techTags(techs []string) *html.Node {
	return dom.Element("div", dom.Class("tech-tags"), dom.Each(techs, func(t string) *html.Node {
		return dom.Element("span", dom.Class("tech-tag"), dom.Text(t))
	}))
}
