// Package events defines the wire payloads the page scanner emits and the
// relay pushes to consumers. Every event is self-contained: a dropped or
// reordered event is superseded by the next scan tick.
package events

const (
	TypeBidUpdate  = "bid_update"
	TypeRoster     = "roster"
	TypePlayerSold = "player_sold"
	TypeMyTeam     = "my_team"
)

type Event struct {
	Type string `json:"type"`

	// bid_update, player_sold
	PlayerName string `json:"player_name,omitempty"`
	// bid_update always carries a bid; player_sold may omit it
	Bid *int `json:"bid,omitempty"`

	// roster
	Names []string       `json:"names,omitempty"`
	Costs map[string]int `json:"costs,omitempty"`

	// player_sold
	Winner   string `json:"winner,omitempty"`
	WonByYou *bool  `json:"won_by_you,omitempty"`

	// my_team
	Name string `json:"name,omitempty"`
}

func BidUpdate(playerName string, bid int) Event {
	return Event{Type: TypeBidUpdate, PlayerName: playerName, Bid: &bid}
}

func RosterSync(names []string, costs map[string]int) Event {
	return Event{Type: TypeRoster, Names: names, Costs: costs}
}
