package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Draft collects the fields of a new listing one at a time. It is filled by
// a front-end in a fixed field order and validated only at submission;
// until then any field may be blank.
type Draft struct {
	Number  string `json:"number"`   // channel reference number
	Name    string `json:"name"`     // display name
	City    string `json:"city"`     // location label, e.g. "Orlando FL"
	MapLink string `json:"map_link"` // map URL used for the location anchor
	Details string `json:"details"`  // free-text detail block
	MenuNum string `json:"menu_num"` // numeric menu reference
	Phone   string `json:"phone"`
	Handle  string `json:"handle"` // messaging handle, "@user" form
	Extra   string `json:"extra"`  // optional trailing note
}

// Render produces the two text representations of the listing. The channel
// text carries a leading reference-number line; the user text is identical
// without it.
func (d Draft) Render() (channel, user string) {
	var b strings.Builder
	b.WriteString("🍽️ <b>" + d.Name + "</b>\n")
	b.WriteString("📍 <a href='" + d.MapLink + "'>" + d.City + "</a>\n")
	b.WriteString(d.Details + "\n")
	b.WriteString("📋 <a href='https://t.me/myhalalmenu/" + d.MenuNum + "'>Меню</a>\n")
	b.WriteString("📞 " + d.Phone + "\n")
	b.WriteString("📱 Telegram: " + d.Handle + "\n")
	if strings.TrimSpace(d.Extra) != "" {
		b.WriteString("📝 Qo'shimcha: " + d.Extra + "\n")
	}
	user = b.String()
	channel = "#️⃣" + d.Number + "\n" + user
	return channel, user
}

// Validate checks the draft at submission time. All fields except Extra are
// required; the handle must be in "@user" form.
func (d Draft) Validate() error {
	missing := []string{}
	for _, f := range []struct{ name, val string }{
		{"number", d.Number},
		{"name", d.Name},
		{"city", d.City},
		{"map_link", d.MapLink},
		{"details", d.Details},
		{"menu_num", d.MenuNum},
		{"phone", d.Phone},
		{"handle", d.Handle},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return eris.Errorf("draft: missing fields: %s", strings.Join(missing, ", "))
	}
	if !strings.HasPrefix(d.Handle, "@") || len(d.Handle) < 2 {
		return eris.Errorf("draft: handle %q must be in @user form", d.Handle)
	}
	for _, r := range d.MenuNum {
		if r < '0' || r > '9' {
			return eris.Errorf("draft: menu_num %q must be numeric", d.MenuNum)
		}
	}
	return nil
}
