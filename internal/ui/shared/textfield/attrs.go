package textfield

import "strings"

// Ambient attributes are partitioned between the shell (root level) and
// the native input by an explicit table. Names in rootOnly never reach
// the input even when they also look input-shaped; names in inputAttrs,
// plus listener-shaped names ("on" prefix), go to the input; everything
// else goes to the root.
var (
	rootOnly = map[string]bool{
		"class": true,
		"style": true,
		"id":    true,
		"title": true,
		"role":  true,
	}

	inputAttrs = map[string]bool{
		"autocapitalize": true,
		"autocomplete":   true,
		"autocorrect":    true,
		"enterkeyhint":   true,
		"form":           true,
		"inputmode":      true,
		"list":           true,
		"maxlength":      true,
		"minlength":      true,
		"name":           true,
		"pattern":        true,
		"readonly":       true,
		"size":           true,
		"spellcheck":     true,
		"step":           true,
	}
)

// partitionAttrs splits the ambient attribute bag into the subset
// forwarded to the root/shell and the subset forwarded to the native
// input.
func partitionAttrs(attrs map[string]string) (root, input map[string]string) {
	root = make(map[string]string)
	input = make(map[string]string)
	for name, value := range attrs {
		switch {
		case rootOnly[name]:
			root[name] = value
		case inputAttrs[name] || strings.HasPrefix(name, "on"):
			input[name] = value
		default:
			root[name] = value
		}
	}
	return root, input
}
