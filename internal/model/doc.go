// Package model defines the core data structures shared by every
// gamevault package.
//
// # Item
//
// Item is a single catalog entry. Items are built once by a data source
// and never mutated afterwards:
//
//	item := model.Item{
//	    ID:          "2f6b...",
//	    Title:       "Nebula Drift",
//	    Category:    "RPG",
//	    Genres:      []string{"MMORPG", "Sandbox"},
//	    Rating:      4.5,
//	    Downloads:   120345,
//	    Size:        "12 GB",
//	    ReleaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
//	}
//	fmt.Println(item.FormatDownloads()) // "120.3K"
//	fmt.Println(item.SizeGB())          // 12
//	fmt.Println(item.SizeBytes())       // 12000000000
//
// # Review
//
// Review is a user comment attached to an item. Reviews are produced on
// demand by a data source each time a detail view opens.
//
// # Session
//
// Session is the mocked authenticated-user record created by a successful
// login or registration. It carries no credentials.
package model
