package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/content"
	"github.com/nfrund/backstory/internal/domain"
)

// ContactState is what the forms render from: the shared banner status and
// the values currently in the fields.
type ContactState struct {
	Status contact.Status
	Fields contact.Fields
	// Notice is a one-off message outside the status set, e.g. a rate limit.
	Notice string
}

// Contact is the contact section: details on one side, both forms inside the
// tilting frame on the other.
func Contact(c content.Contact, state ContactState) g.Node {
	return Section(
		ID("contact"),
		Class("contact"),
		Div(
			Class("contact__inner"),
			TitleWords(c.Title, "contact__title"),
			g.If(c.Heading != "", H3(Class("contact__heading"), g.Text(c.Heading))),
			g.If(c.Intro != "", P(Class("contact__intro"), g.Text(c.Intro))),
			Div(
				Class("contact__grid"),
				contactInfo(c.Info),
				Div(
					Class("contact__frame"),
					Data("tilt", ""),
					ContactForms(state),
				),
			),
		),
	)
}

func contactInfo(items []content.ContactInfo) g.Node {
	return Ul(
		Class("contact__info"),
		g.Group(g.Map(items, func(item content.ContactInfo) g.Node {
			var value g.Node = Span(Class("contact__value"), g.Text(item.Value))
			if item.Href != "" {
				value = A(Class("contact__value"), Href(item.Href), g.Text(item.Value))
			}
			return Li(
				Class("contact__item"),
				g.If(item.Icon != "", Span(Class("contact__icon icon-"+item.Icon), Aria("hidden", "true"))),
				Span(Class("contact__label"), g.Text(item.Label)),
				value,
			)
		})),
	)
}

// ContactForms holds the banner and both forms. Each form swaps only itself
// after an htmx submission, so text typed into the other one is never touched.
func ContactForms(state ContactState) g.Node {
	busy := state.Status == contact.StatusSubmitting
	return Div(
		ID("contact-forms"),
		Class("contact__forms"),
		Banner(state.Status),
		g.If(state.Notice != "", P(Class("contact__notice"), Role("alert"), g.Text(state.Notice))),
		InquiryForm(state.Fields, busy),
		QuickForm(state.Fields, busy),
		Div(ID("contact-indicator"), Class("htmx-indicator contact__sending"), g.Text(contact.StatusSubmitting.Message())),
	)
}

// InquiryForm is the detailed inquiry form.
func InquiryForm(f contact.Fields, busy bool) g.Node {
	return Form(
		ID("inquiry-form"),
		Class("contact__form"),
		formPost("/contact/inquiry"),
		H3(g.Text("Send an inquiry")),
		field("name", "Name", "text", f.Name, true),
		field("email", "Email", "email", f.Email, true),
		field("phone", "Phone", "tel", f.Phone, false),
		field("subject", "Subject", "text", f.Subject, true),
		area("message", "Message", f.Message, 5),
		submit("Send inquiry", busy),
	)
}

// QuickForm is the quick message form.
func QuickForm(f contact.Fields, busy bool) g.Node {
	return Form(
		ID("quick-form"),
		Class("contact__form contact__form--quick"),
		formPost("/contact/quick"),
		H3(g.Text("Quick message")),
		field("quick_email", "Email", "email", f.QuickEmail, true),
		area("quick_message", "Message", f.QuickMessage, 3),
		submit("Send", busy),
	)
}

// ContactSubmitted is the htmx answer to a submission: the submitted form in
// its new state plus the shared banner as an out-of-band swap.
func ContactSubmitted(form domain.Form, state ContactState) g.Node {
	var formNode g.Node
	if form == domain.FormQuick {
		formNode = QuickForm(state.Fields, false)
	} else {
		formNode = InquiryForm(state.Fields, false)
	}
	return g.Group([]g.Node{formNode, banner(state.Status, hx.SwapOOB("true"))})
}

// Banner shows the shared status. Terminal statuses fetch the idle banner
// after the clear delay; idle renders an empty live region.
func Banner(status contact.Status) g.Node {
	return banner(status)
}

func banner(status contact.Status, extra ...g.Node) g.Node {
	class := "contact__banner"
	switch {
	case status.IsError():
		class += " contact__banner--error"
	case status.Terminal():
		class += " contact__banner--success"
	}
	return Div(
		ID("contact-banner"),
		Class(class),
		Role("status"),
		Aria("live", "polite"),
		Data("status", string(status)),
		g.Group(extra),
		g.If(status.Terminal(), g.Group([]g.Node{
			hx.Get("/contact/banner/idle"),
			hx.Trigger("load delay:"+contact.ClearDelay.String()),
			hx.Swap("outerHTML"),
		})),
		g.If(status.Message() != "", g.Text(status.Message())),
	)
}

// formPost posts the form to action, without JavaScript as a plain post and
// with htmx by swapping the form itself.
func formPost(action string) g.Node {
	return g.Group([]g.Node{
		Action(action),
		Method("post"),
		hx.Post(action),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		hx.Indicator("#contact-indicator"),
		g.Attr("hx-disabled-elt", "find button"),
		g.Attr("novalidate", ""),
	})
}

func field(name, label, typ, value string, required bool) g.Node {
	id := "contact-" + name
	return Div(
		Class("contact__field"),
		Label(For(id), g.Text(label), g.If(!required, Span(Class("contact__optional"), g.Text(" (optional)")))),
		Input(ID(id), Name(name), Type(typ), Value(value), g.If(required, Required())),
	)
}

func area(name, label, value string, rows int) g.Node {
	id := "contact-" + name
	return Div(
		Class("contact__field"),
		Label(For(id), g.Text(label)),
		Textarea(ID(id), Name(name), Rows(strconv.Itoa(rows)), Required(), g.Text(value)),
	)
}

func submit(label string, busy bool) g.Node {
	return Button(Type("submit"), Class("button button--primary"), g.If(busy, Disabled()), g.Text(label))
}
