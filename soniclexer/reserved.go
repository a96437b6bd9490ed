package soniclexer

// Sonic reserved words. Matching is case-sensitive, unlike SQL-family
// languages: "Let" is an ordinary identifier.
var reservedWords = map[string]struct{}{
	"associatedtype":  {},
	"class":           {},
	"deinit":          {},
	"enum":            {},
	"extension":       {},
	"fileprivate":     {},
	"func":            {},
	"import":          {},
	"init":            {},
	"inout":           {},
	"internal":        {},
	"let":             {},
	"open":            {},
	"operator":        {},
	"private":         {},
	"precedencegroup": {},
	"protocol":        {},
	"public":          {},
	"rethrows":        {},
	"static":          {},
	"struct":          {},
	"subscript":       {},
	"typealias":       {},
	"var":             {},
	"break":           {},
	"case":            {},
	"catch":           {},
	"continue":        {},
	"default":         {},
	"defer":           {},
	"do":              {},
	"else":            {},
	"fallthrough":     {},
	"for":             {},
	"guard":           {},
	"if":              {},
	"in":              {},
	"repeat":          {},
	"return":          {},
	"throw":           {},
	"switch":          {},
	"where":           {},
	"while":           {},
	"Any":             {},
	"as":              {},
	"false":           {},
	"is":              {},
	"nil":             {},
	"self":            {},
	"Self":            {},
	"super":           {},
	"throws":          {},
	"true":            {},
	"try":             {},
	"_":               {},
	"associativity":   {},
	"convenience":     {},
	"didSet":          {},
	"dynamic":         {},
	"final":           {},
	"get":             {},
	"indirect":        {},
	"infix":           {},
	"lazy":            {},
	"left":            {},
	"mutating":        {},
	"none":            {},
	"nonmutating":     {},
	"optional":        {},
	"override":        {},
	"postfix":         {},
	"precedence":      {},
	"prefix":          {},
	"Protocol":        {},
	"required":        {},
	"right":           {},
	"set":             {},
	"some":            {},
	"Type":            {},
	"unowned":         {},
	"weak":            {},
	"willSet":         {},
}

// LookupKeyword returns the Keyword for text if it is a reserved word.
func LookupKeyword(text string) (Keyword, bool) {
	if _, ok := reservedWords[text]; ok {
		return Keyword(text), true
	}
	return "", false
}
