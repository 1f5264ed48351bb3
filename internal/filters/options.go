package filters

import model "task-tracker.com/task-tracker/internal/models"

type SortOption struct {
	Value     string `json:"value"`
	Text      string `json:"text"`
	Field     string `json:"field,omitempty"`
	Direction string `json:"direction,omitempty"`
}

type FilterChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOption struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Type    string         `json:"type"`
	Field   string         `json:"field,omitempty"`
	Options []FilterChoice `json:"options,omitempty"`
}

// Config describes the filter controls a client renders for a listing.
type Config struct {
	Features      []string       `json:"features"`
	SortOptions   []SortOption   `json:"sortOptions"`
	FilterOptions []FilterOption `json:"filterOptions,omitempty"`
	Limits        []int          `json:"limits,omitempty"`
	DefaultLimit  int            `json:"defaultLimit,omitempty"`
}

func TaskConfig(limits []int, defaultLimit int) Config {
	return Config{
		Features: []string{"search", "sort", "advancedFilters", "pagination"},
		SortOptions: []SortOption{
			{Value: "", Text: "Default"},
			sortOption(model.TaskFieldName, "asc", "Name A-Z"),
			sortOption(model.TaskFieldName, "desc", "Name Z-A"),
			sortOption(model.TaskFieldDateFrom, "asc", "Oldest start date"),
			sortOption(model.TaskFieldDateFrom, "desc", "Newest start date"),
			sortOption(model.TaskFieldIsDone, "asc", "Open first"),
			sortOption(model.TaskFieldIsDone, "desc", "Done first"),
		},
		FilterOptions: []FilterOption{
			{
				ID:    "status",
				Label: "Status",
				Type:  "checkbox-group",
				Field: model.TaskFieldIsDone,
				Options: []FilterChoice{
					{Value: ParamDone, Label: "Done"},
					{Value: ParamTodo, Label: "To do"},
				},
			},
			{ID: ParamDateFrom, Label: "Date from", Type: "date", Field: model.TaskFieldDateFrom},
			{ID: ParamDateTo, Label: "Date to", Type: "date", Field: model.TaskFieldDateTo},
		},
		Limits:       limits,
		DefaultLimit: defaultLimit,
	}
}

func UserConfig() Config {
	return Config{
		Features: []string{"search", "sort"},
		SortOptions: []SortOption{
			{Value: "", Text: "Default"},
			sortOption(model.UserFieldName, "asc", "Name A-Z"),
			sortOption(model.UserFieldName, "desc", "Name Z-A"),
			sortOption(model.UserFieldCreatedAt, "asc", "Oldest"),
			sortOption(model.UserFieldCreatedAt, "desc", "Newest"),
		},
	}
}

func sortOption(field, direction, text string) SortOption {
	return SortOption{Value: field + "|" + direction, Text: text, Field: field, Direction: direction}
}
