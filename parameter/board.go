package parameter

// Board layout in terminal cells
const (
	// ItemHeight is the height of an item in a vertical list
	ItemHeight = 3

	// ItemWidth is the width of an item in a horizontal list
	ItemWidth = 14

	// ListGap is the spacing between lists and around the board
	ListGap = 2

	// MinColumnWidth keeps labels readable when many lists share the screen
	MinColumnWidth = 16

	// BoardTop is the first row below the header and list titles
	BoardTop = 2
)
