package i18n

import "regexp"

// paramRegex matches named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format substitutes %{name} placeholders in tmpl. Arguments are given as
// name, value pairs; an odd trailing argument is ignored and unknown
// placeholders are kept as they are.
func Format(tmpl string, args ...string) string {
	if len(args) < 2 {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// Format looks up key and substitutes its placeholders.
func (t Table) Format(key string, args ...string) (string, error) {
	v, err := t.Lookup(key)
	if err != nil {
		return "", err
	}
	return Format(v, args...), nil
}
