package dialect

// The built-in dialects register at import time, so importing this package
// is all it takes to make them available by name.
func init() {
	Register(ansi)
	Register(postgres)
	Register(mysql)
	Register(bigquery)
}
