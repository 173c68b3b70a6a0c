package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconConfig  = "" // config
	IconKey     = "" // key

	IconCursor = "" // chevron-right
	IconWindow = "" // window
	IconPane   = "" // columns
	IconTree   = "" // tree
	IconDoctor = "\uf0f1" // stethoscope
)
