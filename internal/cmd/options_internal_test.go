package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/beangen/internal/diag"
)

func TestPosixLocale(t *testing.T) {
	type testCase struct {
		in   string
		want string
	}
	testCases := []testCase{
		{"ja_JP.UTF-8", "ja-JP"},
		{"en_US@euro", "en-US"},
		{"C", ""},
		{"POSIX.UTF-8", ""},
		{"de", "de"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, posixLocale(tc.in))
		})
	}
}

func TestOptionsLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ja_JP.UTF-8")
	assert.Equal(t, diag.Japanese, (&Options{}).locale())
	assert.Equal(t, diag.Root, (&Options{Locale: "en"}).locale())

	t.Setenv("LANG", "C")
	assert.Equal(t, diag.Root, (&Options{}).locale())
}
