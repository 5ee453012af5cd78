package source

// Domain word lists used by Generator for artwork and titles. Generic
// text comes from gofakeit.

var thumbnails = []string{
	"https://images.unsplash.com/photo-1542751371-adc38448a05e?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1614294148960-9aa740632a87?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1566577739112-5180d4bf9390?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?w=800&h=600&fit=crop",
	"https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=800&h=600&fit=crop",
}

var titlePrefixes = []string{
	"Iron", "Shadow", "Crimson", "Stellar", "Frozen", "Neon", "Ancient", "Silent",
	"Savage", "Golden", "Broken", "Hollow", "Rogue", "Electric", "Lost", "Wild",
}

var titleNouns = []string{
	"Empire", "Legends", "Frontier", "Odyssey", "Protocol", "Dynasty", "Horizon", "Outpost",
	"Kingdom", "Syndicate", "Requiem", "Arena", "Voyage", "Citadel", "Chronicles", "Rally",
}

var titleSuffixes = []string{
	"Rising", "Reborn", "Unleashed", "Origins", "Tactics", "Online", "Zero", "Remastered",
	"Eclipse", "Nexus", "Siege", "Drift", "Saga", "Overdrive", "Exodus", "Legacy",
}
