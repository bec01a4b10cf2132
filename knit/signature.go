package knit

import "strings"

// arrow separates a method's owner from the type it produces in knit
// signature strings, e.g. "knit.demo.Logger.<init> -> knit.demo.Logger".
const arrow = "->"

// ExtractProvidedType returns the type a provider signature produces: the
// substring after the last "->", trimmed of surrounding whitespace. ok is
// false when the signature carries no "->" at all; such declarations are
// not decodable and callers skip them rather than fail the build.
func ExtractProvidedType(signature string) (string, bool) {
	idx := strings.LastIndex(signature, arrow)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(signature[idx+len(arrow):]), true
}

// ExtractInjectionType returns the type consumed by an injection signature
// and its optional trailing status annotation:
//
//	"Shell.run -> knit.demo.CommandRegistry (GLOBAL)"
//
// yields ("knit.demo.CommandRegistry", "GLOBAL"). Without the trailing
// parenthesis the status is empty; without "->" the signature is not
// decodable and ok is false.
func ExtractInjectionType(methodID string) (typ, status string, ok bool) {
	rest, ok := ExtractProvidedType(methodID)
	if !ok {
		return "", "", false
	}
	open := strings.Index(rest, "(")
	if open < 0 {
		return rest, "", true
	}
	typ = strings.TrimSpace(rest[:open])
	status = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[open+1:]), ")"))
	return typ, status, true
}

// IsSelfProvider reports whether a provider signature declares the class's
// own initializer producing the class itself. Knit metadata names the same
// class both slash-delimited ("knit/demo/Shell") and dot-delimited
// ("knit.demo.Shell"), so every naming form of the identifier is tried,
// including the bare trailing segment.
func IsSelfProvider(classID, signature string) bool {
	for _, name := range identifierForms(classID) {
		if strings.Contains(signature, name+".<init>") &&
			strings.Contains(signature, arrow+" "+name) {
			return true
		}
	}
	return false
}

// identifierForms lists the naming variants a class identifier may appear
// under inside signature strings.
func identifierForms(classID string) []string {
	forms := []string{classID}
	if dotted := strings.ReplaceAll(classID, "/", "."); dotted != classID {
		forms = append(forms, dotted)
	}
	if i := strings.LastIndexAny(classID, "/."); i >= 0 {
		forms = append(forms, classID[i+1:])
	}
	return forms
}
