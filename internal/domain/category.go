package domain

const (
	UncategorizedSlug  = "uncategorized"
	UncategorizedColor = "bg-gray-100 text-gray-800 dark:bg-gray-900 dark:text-gray-200"
)

type Category struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Icon  *string `json:"icon"`
	Color string  `json:"color"`
}

// Uncategorized stands in for an event whose category row is gone.
func Uncategorized() Category {
	return Category{
		Name:  "Uncategorized",
		Slug:  UncategorizedSlug,
		Color: UncategorizedColor,
	}
}

func (c Category) IsPlaceholder() bool {
	return c.ID == ""
}

type CategoryInput struct {
	Name  string
	Slug  string
	Icon  *string
	Color string
}
