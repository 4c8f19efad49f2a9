package tier

// Default returns the standard nine-tier giveaway table.
func Default() *Table {
	table, err := NewTable([]Detail{
		{Tier: 1, Label: "Tier 1", Weight: 0.40, Color: 0x95a5a6, Emoji: "🪨", Flavor: "A common find. The streak counts."},
		{Tier: 2, Label: "Tier 2", Weight: 0.20, Color: 0xbdc3c7, Emoji: "🥉", Flavor: "Slightly shinier than yesterday."},
		{Tier: 3, Label: "Tier 3", Weight: 0.12, Color: 0x2ecc71, Emoji: "🌿", Flavor: "Now we're getting somewhere."},
		{Tier: 4, Label: "Tier 4", Weight: 0.08, Color: 0x3498db, Emoji: "💧", Flavor: "A respectable pull."},
		{Tier: 5, Label: "Tier 5", Weight: 0.06, Color: 0x9b59b6, Emoji: "🔮", Flavor: "The crowd murmurs."},
		{Tier: 6, Label: "Tier 6", Weight: 0.05, Color: 0xe67e22, Emoji: "🔥", Flavor: "Prize territory. Nice."},
		{Tier: 7, Label: "Tier 7", Weight: 0.04, Color: 0xe74c3c, Emoji: "💎", Flavor: "Rare air up here."},
		{Tier: 8, Label: "Tier 8", Weight: 0.03, Color: 0xf1c40f, Emoji: "👑", Flavor: "Almost the top of the mountain."},
		{Tier: 9, Label: "Tier 9", Weight: 0.02, Color: 0xff2a6d, Emoji: "🐉", Flavor: "The grand prize. Legends are made of this."},
	})
	if err != nil {
		// The built-in table is statically valid.
		panic(err)
	}
	return table
}
