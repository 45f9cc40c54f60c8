package templater

func init() {
	Register(rawTemplater{})
}

// rawTemplater passes the source through untouched. It is the default.
type rawTemplater struct{}

func (rawTemplater) Name() string { return "raw" }

func (rawTemplater) Process(src, path string, context map[string]any) (string, error) {
	return src, nil
}
