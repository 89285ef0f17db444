package markup

import "testing"

func TestAttr(t *testing.T) {
	a := Attr("href", "/home")
	if a.Name != "href" || a.Value != "/home" {
		t.Errorf("Attr = %+v, want href=/home", a)
	}
}

func TestFlag(t *testing.T) {
	a := Flag("disabled")
	if a.Name != "disabled" || a.Value != "" {
		t.Errorf("Flag = %+v, want name only", a)
	}
	if a.IsEmpty() {
		t.Error("Flag should not be inert")
	}
}

func TestAttrIf(t *testing.T) {
	if a := AttrIf(true, "id", "x"); a.IsEmpty() {
		t.Error("AttrIf(true) should produce an attribute")
	}
	if a := AttrIf(false, "id", "x"); !a.IsEmpty() {
		t.Error("AttrIf(false) should produce an inert attribute")
	}
}

func TestFlagIf(t *testing.T) {
	if a := FlagIf(true, "checked"); a.Name != "checked" {
		t.Errorf("FlagIf(true).Name = %q, want %q", a.Name, "checked")
	}
	if a := FlagIf(false, "checked"); !a.IsEmpty() {
		t.Error("FlagIf(false) should produce an inert attribute")
	}
}

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name  string
		attr  Attribute
		wantN string
		wantV string
	}{
		{"ID", ID("main"), "id", "main"},
		{"Class single", Class("card"), "class", "card"},
		{"Class joined", Class("btn", "btn-primary"), "class", "btn btn-primary"},
		{"StyleAttr", StyleAttr("color: red"), "style", "color: red"},
		{"Data", Data("id", "123"), "data-id", "123"},
		{"Href", Href("/about"), "href", "/about"},
		{"Src", Src("/logo.png"), "src", "/logo.png"},
		{"Alt", Alt("logo"), "alt", "logo"},
		{"Type", Type("text"), "type", "text"},
		{"Placeholder", Placeholder("Search..."), "placeholder", "Search..."},
		{"Width", Width(640), "width", "640"},
		{"Height", Height(480), "height", "480"},
		{"TabIndex", TabIndex(-1), "tabindex", "-1"},
		{"Lang", Lang("en"), "lang", "en"},
		{"Charset", Charset("utf-8"), "charset", "utf-8"},
		{"Role", Role("navigation"), "role", "navigation"},
		{"AriaLabel", AriaLabel("Close"), "aria-label", "Close"},
		{"AriaHidden", AriaHidden(true), "aria-hidden", "true"},
		{"TitleAttr", TitleAttr("tip"), "title", "tip"},
		{"Disabled", Disabled(), "disabled", ""},
		{"Checked", Checked(), "checked", ""},
		{"Required", Required(), "required", ""},
		{"Hidden", Hidden(), "hidden", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Name != tt.wantN {
				t.Errorf("Name = %q, want %q", tt.attr.Name, tt.wantN)
			}
			if tt.attr.Value != tt.wantV {
				t.Errorf("Value = %q, want %q", tt.attr.Value, tt.wantV)
			}
		})
	}
}

func TestStyleConstructors(t *testing.T) {
	tests := []struct {
		name string
		rule StyleRule
		want StyleRule
	}{
		{"Style", Style("color", "red"), StyleRule{Property: "color", Value: "red"}},
		{"MediaStyle", MediaStyle("(max-width: 600px)", "font-size", "14px"),
			StyleRule{Property: "font-size", Value: "14px", Media: "(max-width: 600px)"}},
		{"Hover", Hover("color", "blue"), StyleRule{Property: "color", Value: "blue", Pseudo: ":hover"}},
		{"Focus", Focus("outline", "none"), StyleRule{Property: "outline", Value: "none", Pseudo: ":focus"}},
		{"Active", Active("opacity", "0.8"), StyleRule{Property: "opacity", Value: "0.8", Pseudo: ":active"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.rule != tt.want {
				t.Errorf("rule = %+v, want %+v", tt.rule, tt.want)
			}
		})
	}
}

func TestStyleRuleIdentity(t *testing.T) {
	// Identity is structural string equality across all fields.
	a := Style("color", "red")
	b := Style("color", "red")
	if a != b {
		t.Error("identical rules should compare equal")
	}

	c := MediaStyle(MediaPrint, "color", "red")
	if a == c {
		t.Error("rules differing only in Media should not compare equal")
	}

	d := Style("color", "#ff0000")
	if a == d {
		t.Error("equivalent colors spelled differently are distinct rules")
	}
}
