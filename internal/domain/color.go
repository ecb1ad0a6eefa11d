package domain

// Color is a task color: the stored identifier and its English display name
type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultColors lists the colors a task can carry, in display order
var DefaultColors = []Color{
	{ID: "yellow", Name: "Yellow"},
	{ID: "blue", Name: "Blue"},
	{ID: "green", Name: "Green"},
	{ID: "purple", Name: "Purple"},
	{ID: "red", Name: "Red"},
	{ID: "orange", Name: "Orange"},
	{ID: "grey", Name: "Grey"},
	{ID: "brown", Name: "Brown"},
	{ID: "deep_orange", Name: "Deep Orange"},
	{ID: "dark_grey", Name: "Dark Grey"},
	{ID: "pink", Name: "Pink"},
	{ID: "teal", Name: "Teal"},
	{ID: "cyan", Name: "Cyan"},
	{ID: "lime", Name: "Lime"},
	{ID: "light_green", Name: "Light Green"},
	{ID: "amber", Name: "Amber"},
}
