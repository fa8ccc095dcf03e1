package gamedata

// Layout fills.
const (
	FillWall  = "wall"  // Start solid and carve rooms out
	FillEmpty = "empty" // Start open and place walls
)

// Tunnel axes.
const (
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
)

// PointDef is a single grid position.
type PointDef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoomDef is a rectangular room given by corner and size.
type RoomDef struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// TunnelDef is a one-tile-wide straight passage.
// For a horizontal tunnel From/To are x coordinates and At is the row;
// for a vertical tunnel From/To are y coordinates and At is the column.
type TunnelDef struct {
	Axis string `json:"axis"`
	From int    `json:"from"`
	To   int    `json:"to"`
	At   int    `json:"at"`
}

// LayoutDef defines a fixed map layout loaded from JSON.
type LayoutDef struct {
	ID          string      `json:"id"`          // Unique identifier (e.g., "rooms")
	Name        string      `json:"name"`        // Display name
	Description string      `json:"description"` // One-line summary for listings
	Fill        string      `json:"fill"`        // FillWall or FillEmpty
	Rooms       []RoomDef   `json:"rooms"`       // Carved in order
	Tunnels     []TunnelDef `json:"tunnels"`     // Carved after rooms
	Walls       []PointDef  `json:"walls"`       // Forced to wall last
	Spawn       *PointDef   `json:"spawn"`       // Optional player start
}

// LayoutsFile represents the structure of layouts.json.
type LayoutsFile struct {
	Layouts []LayoutDef `json:"layouts"`
}

// LoadLayouts loads layout definitions from the embedded layouts.json file.
func LoadLayouts() ([]LayoutDef, error) {
	file, err := Load[LayoutsFile]("layouts.json")
	if err != nil {
		return nil, err
	}
	return file.Layouts, nil
}
