package page

// Script is an external script referenced by a page.
type Script struct {
	Src string
}

// StyleSheet is an external style sheet referenced by a page.
type StyleSheet struct {
	Href string
}

// HeadScript is a named script embedded into a page.
type HeadScript struct {
	Name string
	Code string
}

// Assets collects the scripts and style sheets a page references.
//
// Each kind of asset is kept in insertion order.
// Adding an asset that is already present has no effect,
// except for head scripts, which replace the earlier script
// with the same name in place.
type Assets struct {
	scripts     []Script
	styleSheets []StyleSheet
	headScripts []HeadScript
}

// AddScript references the script at src.
// It reports whether the script was added.
func (a *Assets) AddScript(src string) bool {
	for _, s := range a.scripts {
		if s.Src == src {
			return false
		}
	}
	a.scripts = append(a.scripts, Script{Src: src})
	return true
}

// AddStyleSheet references the style sheet at href.
// It reports whether the style sheet was added.
func (a *Assets) AddStyleSheet(href string) bool {
	for _, s := range a.styleSheets {
		if s.Href == href {
			return false
		}
	}
	a.styleSheets = append(a.styleSheets, StyleSheet{Href: href})
	return true
}

// AddHeadScript embeds a script with the given name.
func (a *Assets) AddHeadScript(name, code string) {
	for i, s := range a.headScripts {
		if s.Name == name {
			a.headScripts[i].Code = code
			return
		}
	}
	a.headScripts = append(a.headScripts, HeadScript{Name: name, Code: code})
}

// Scripts returns the referenced scripts in order.
func (a *Assets) Scripts() []Script {
	return append([]Script(nil), a.scripts...)
}

// StyleSheets returns the referenced style sheets in order.
func (a *Assets) StyleSheets() []StyleSheet {
	return append([]StyleSheet(nil), a.styleSheets...)
}

// HeadScripts returns the embedded scripts in order.
func (a *Assets) HeadScripts() []HeadScript {
	return append([]HeadScript(nil), a.headScripts...)
}
