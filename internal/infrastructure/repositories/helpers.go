package repositories

import "github.com/volatiletech/null/v8"

// nullStringFrom maps the empty string to SQL NULL so partial unique indexes
// on optional columns are not tripped by empty values.
func nullStringFrom(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
