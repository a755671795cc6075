// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package catalog

import (
	"slices"

	"github.com/tomtom215/analoguememory/internal/models"
)

const unsplash = "https://images.unsplash.com/"
const unsplashParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"

var mockCategories = []models.Category{
	{ID: "movies", Name: "Movies", Description: "Classic films from your childhood and beyond"},
	{ID: "tv-shows", Name: "TV Shows", Description: "Television series that defined generations"},
	{ID: "video-games", Name: "Video Games", Description: "From arcade classics to console favorites"},
	{ID: "toys", Name: "Toys", Description: "Iconic toys and games from different eras"},
	{ID: "music", Name: "Music", Description: "Hits and albums that were the soundtrack to your life"},
	{ID: "fashion", Name: "Fashion", Description: "Styles and trends that marked the decades"},
}

var mockItems = []models.CatalogItem{
	{ID: "1", Title: "The Lion King", ImageURL: unsplash + "photo-1599839575945-a9e5af0c3fa5" + unsplashParams, Category: "Movies", Year: 1994,
		Description: "A Disney animated classic about a young lion prince who flees his kingdom after the murder of his father."},
	{ID: "2", Title: "Super Nintendo Entertainment System", ImageURL: unsplash + "photo-1531525645387-7f14be1bdbbd" + unsplashParams, Category: "Video Games", Year: 1990,
		Description: "The 16-bit home video game console that defined a generation of gaming."},
	{ID: "3", Title: "Friends", ImageURL: unsplash + "photo-1603190287605-e6ade32fa852" + unsplashParams, Category: "TV Shows", Year: 1994,
		Description: "A sitcom about six friends living in Manhattan, navigating through life, love, and careers."},
	{ID: "4", Title: "Tamagotchi", ImageURL: unsplash + "photo-1531908012224-8f8865e79a96" + unsplashParams, Category: "Toys", Year: 1996,
		Description: "A handheld digital pet that you had to feed, clean, and care for."},
	{ID: "5", Title: "Nirvana - Nevermind", ImageURL: unsplash + "photo-1629276301820-0f3eedc29fd0" + unsplashParams, Category: "Music", Year: 1991,
		Description: `The second studio album by American rock band Nirvana, featuring the hit "Smells Like Teen Spirit".`},
	{ID: "6", Title: "Jurassic Park", ImageURL: unsplash + "photo-1608889825103-eb5ed706fc64" + unsplashParams, Category: "Movies", Year: 1993,
		Description: "A science fiction adventure film about a theme park with cloned dinosaurs."},
	{ID: "7", Title: "The Fresh Prince of Bel-Air", ImageURL: unsplash + "photo-1611215681505-2c01a8be3f9e" + unsplashParams, Category: "TV Shows", Year: 1990,
		Description: "A sitcom starring Will Smith as a teenager from Philadelphia who is sent to live with his wealthy relatives in Bel-Air."},
	{ID: "8", Title: "Pokémon Red and Blue", ImageURL: unsplash + "photo-1613771404784-3a5686aa2be3" + unsplashParams, Category: "Video Games", Year: 1996,
		Description: "The first Pokémon games released for the Game Boy, starting a global phenomenon."},
	{ID: "9", Title: "Beanie Babies", ImageURL: unsplash + "photo-1558877385-81a1c7e67d72" + unsplashParams, Category: "Toys", Year: 1993,
		Description: "Collectible plush toys filled with plastic pellets, known for their rarity and collectibility."},
	{ID: "10", Title: "Michael Jackson - Thriller", ImageURL: unsplash + "photo-1619983081563-430f63602796" + unsplashParams, Category: "Music", Year: 1982,
		Description: `The best-selling album of all time, featuring hits like "Billie Jean" and "Beat It".`},
	{ID: "11", Title: "Walkman", ImageURL: unsplash + "photo-1626143508000-4b5904e3e9e2" + unsplashParams, Category: "Toys", Year: 1979,
		Description: "Sony's portable cassette player that revolutionized how people listened to music."},
	{ID: "12", Title: "Grunge Fashion", ImageURL: unsplash + "photo-1552374196-1ab2a1c593e8" + unsplashParams, Category: "Fashion", Year: 1991,
		Description: "A style inspired by grunge musicians, featuring flannel shirts, ripped jeans, and combat boots."},
}

// PopularSearches are suggested queries shown next to the search box.
var PopularSearches = []string{
	"Star Wars",
	"90s Cartoons",
	"Nintendo 64",
	"Vinyl Records",
	"Retro Fashion",
	"Classic Board Games",
	"Vintage Toys",
	"Arcade Games",
}

// MockItems returns a copy of the built-in item set.
func MockItems() []models.CatalogItem {
	return slices.Clone(mockItems)
}

// MockCategories returns a copy of the built-in category set.
func MockCategories() []models.Category {
	return slices.Clone(mockCategories)
}
