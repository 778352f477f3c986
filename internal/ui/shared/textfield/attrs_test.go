package textfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartitionAttrs(t *testing.T) {
	root, input := partitionAttrs(map[string]string{
		"class":          "mt-2",
		"id":             "username",
		"title":          "enter a name",
		"maxlength":      "10",
		"autocomplete":   "off",
		"name":           "user",
		"onpaste":        "handler",
		"data-test":      "field",
		"aria-label":     "user name",
		"autocapitalize": "none",
	})

	require.Equal(t, map[string]string{
		"class":      "mt-2",
		"id":         "username",
		"title":      "enter a name",
		"data-test":  "field",
		"aria-label": "user name",
	}, root, "root-only and unknown names should stay on the root")

	require.Equal(t, map[string]string{
		"maxlength":      "10",
		"autocomplete":   "off",
		"name":           "user",
		"onpaste":        "handler",
		"autocapitalize": "none",
	}, input, "input names and listeners should reach the input")
}

func TestPartitionAttrsEmpty(t *testing.T) {
	root, input := partitionAttrs(nil)
	require.Empty(t, root, "nil bag should partition to empty root set")
	require.Empty(t, input, "nil bag should partition to empty input set")
}
