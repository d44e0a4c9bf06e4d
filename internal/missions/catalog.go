package missions

// Action is the user activity a mission counts
type Action string

const (
	ActionPost     Action = "post"
	ActionMint     Action = "mint"
	ActionFollow   Action = "follow"
	ActionFollower Action = "follower"
)

// Mission is one entry of the fixed mission catalog
type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      Action `json:"action"`
	Target      int64  `json:"target"`
	// Reward is paid in generation tokens on claim
	Reward int64 `json:"reward"`
}

// Catalog is the fixed mission set. IDs are stable; progress and claim state
// reference them.
var Catalog = []Mission{
	{ID: "create_3_posts", Title: "Getting Started", Description: "Create 3 posts", Action: ActionPost, Target: 3, Reward: 20},
	{ID: "create_5_posts", Title: "Content Creator", Description: "Create 5 posts", Action: ActionPost, Target: 5, Reward: 50},
	{ID: "mint_3_posts", Title: "Collector", Description: "Mint 3 posts", Action: ActionMint, Target: 3, Reward: 50},
	{ID: "mint_10_posts", Title: "Serious Collector", Description: "Mint 10 posts", Action: ActionMint, Target: 10, Reward: 100},
	{ID: "follow_10_users", Title: "Social Butterfly", Description: "Follow 10 users", Action: ActionFollow, Target: 10, Reward: 50},
	{ID: "get_10_followers", Title: "Rising Star", Description: "Get 10 followers", Action: ActionFollower, Target: 10, Reward: 100},
}

// Lookup returns the catalog entry for an ID, or nil if unknown
func Lookup(id string) *Mission {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
