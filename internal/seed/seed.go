package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
	"github.com/tripglide/tripglide-api/internal/repository/ports"
)

// EnsureCatalog loads the bundled catalog when the trip table is empty. It
// runs once at startup; a non-empty catalog is never touched, so request-time
// reads always see real data only.
func EnsureCatalog(ctx context.Context, trips ports.TripRepository, authorID uuid.UUID) error {
	count, err := trips.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count trips: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range catalog {
		trip := catalog[i]
		trip.AuthorID = authorID
		if _, err := trips.Create(ctx, &trip); err != nil {
			return fmt.Errorf("seed: create trip %q: %w", trip.Title, err)
		}
	}
	log.Printf("seed: loaded %d trips into empty catalog", len(catalog))
	return nil
}

var catalog = []domain.Trip{
	{
		Title:       "Rio de Janeiro",
		Country:     "Brazil",
		Image:       "https://images.unsplash.com/photo-1483729558449-99ef09a8c325?q=80&auto=format",
		Subtitle:    "Wed, Oct 21 - Wed, Oct 28",
		Description: "One of Brazil's most iconic cities, renowned for its beaches and mountains.",
		Category:    "South America",
		Days:        7,
		Rating:      5.0,
		Reviews:     143,
		Price:       "$489",
		PriceValue:  489,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival to Rio de Janeiro",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Rio de Janeiro and transfer to your hotel"},
					{Time: "Afternoon", Description: "Free time to relax or explore the nearby area"},
					{Time: "Evening", Description: "Welcome dinner at a traditional Brazilian restaurant"},
				},
			},
			{
				Day:   2,
				Title: "Rio de Janeiro Highlights",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Visit Christ the Redeemer statue"},
					{Time: "Afternoon", Description: "Tour of Sugarloaf Mountain with cable car ride"},
					{Time: "Evening", Description: "Dinner and Samba show"},
				},
			},
		},
	},
	{
		Title:       "Machu Picchu Explorer",
		Country:     "Peru",
		Image:       "https://images.unsplash.com/photo-1587595431973-160d0d94add1?q=80&auto=format",
		Subtitle:    "Tue, Nov 5 - Thu, Nov 14",
		Description: "Discover the ancient wonders of Machu Picchu and the Sacred Valley.",
		Category:    "South America",
		Days:        9,
		Rating:      4.9,
		Reviews:     178,
		Price:       "$1,199",
		PriceValue:  1199,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Lima",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Lima and transfer to your hotel"},
					{Time: "Afternoon", Description: "Orientation walk around Miraflores district"},
					{Time: "Evening", Description: "Welcome dinner at a local restaurant"},
				},
			},
		},
	},
	{
		Title:       "Patagonia Trek",
		Country:     "Argentina & Chile",
		Image:       "https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&auto=format",
		Subtitle:    "Mon, Feb 3 - Sun, Feb 16",
		Description: "Experience the breathtaking landscapes of Patagonia in Argentina and Chile.",
		Category:    "South America",
		Days:        14,
		Rating:      4.8,
		Reviews:     92,
		Price:       "$2,349",
		PriceValue:  2349,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Buenos Aires",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Buenos Aires and transfer to your hotel"},
					{Time: "Afternoon", Description: "Rest and acclimatization"},
					{Time: "Evening", Description: "Welcome dinner and trip briefing"},
				},
			},
		},
	},
	{
		Title:       "Bangkok Explorer",
		Country:     "Thailand",
		Image:       "https://images.unsplash.com/photo-1552465011-b4e21bf6e79a?q=80&auto=format",
		Subtitle:    "Wed, Jan 15 - Wed, Jan 22",
		Description: "Experience the vibrant culture and delicious cuisine of Bangkok.",
		Category:    "Asia",
		Days:        7,
		Rating:      4.7,
		Reviews:     89,
		Price:       "$449",
		PriceValue:  449,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival to Bangkok",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Bangkok and transfer to your hotel"},
					{Time: "Afternoon", Description: "Rest and refreshment"},
					{Time: "Evening", Description: "Night market food tour"},
				},
			},
		},
	},
	{
		Title:       "Kyoto Cultural Journey",
		Country:     "Japan",
		Image:       "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?q=80&auto=format",
		Subtitle:    "Sat, Apr 1 - Sat, Apr 8",
		Description: "Immerse yourself in Japan's traditional culture in historic Kyoto.",
		Category:    "Asia",
		Days:        7,
		Rating:      4.9,
		Reviews:     132,
		Price:       "$1,299",
		PriceValue:  1299,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Kyoto",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Kyoto and transfer to your traditional ryokan"},
					{Time: "Afternoon", Description: "Tea ceremony experience"},
					{Time: "Evening", Description: "Traditional kaiseki dinner"},
				},
			},
		},
	},
	{
		Title:       "Bali Island Hopping",
		Country:     "Indonesia",
		Image:       "https://images.unsplash.com/photo-1573790387438-4da905039392?q=80&auto=format",
		Subtitle:    "Mon, Jun 12 - Thu, Jun 22",
		Description: "Explore the paradise islands of Bali, Nusa Penida, and the Gili Islands.",
		Category:    "Asia",
		Days:        10,
		Rating:      4.8,
		Reviews:     156,
		Price:       "$899",
		PriceValue:  899,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Denpasar",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Denpasar and transfer to Ubud"},
					{Time: "Afternoon", Description: "Check-in and relax at your villa"},
					{Time: "Evening", Description: "Welcome dinner with traditional dance performance"},
				},
			},
		},
	},
	{
		Title:       "Paris Getaway",
		Country:     "France",
		Image:       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?q=80&auto=format",
		Subtitle:    "Sat, Feb 14 - Sat, Feb 21",
		Description: "Explore the romantic streets and iconic landmarks of Paris.",
		Category:    "Europe",
		Days:        7,
		Rating:      4.9,
		Reviews:     215,
		Price:       "$789",
		PriceValue:  789,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival to Paris",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Paris and transfer to your hotel"},
					{Time: "Afternoon", Description: "Orientation walk around neighborhood"},
					{Time: "Evening", Description: "Welcome dinner at a French bistro"},
				},
			},
		},
	},
	{
		Title:       "Italian Highlights",
		Country:     "Italy",
		Image:       "https://images.unsplash.com/photo-1516483638261-f4dbaf036963?q=80&auto=format",
		Subtitle:    "Thu, May 5 - Sun, May 15",
		Description: "Discover the beauty of Rome, Florence, and Venice in this Italian adventure.",
		Category:    "Europe",
		Days:        10,
		Rating:      4.8,
		Reviews:     183,
		Price:       "$1,599",
		PriceValue:  1599,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Rome",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Rome and transfer to your hotel"},
					{Time: "Afternoon", Description: "Orientation walk around the historic center"},
					{Time: "Evening", Description: "Welcome dinner at a traditional trattoria"},
				},
			},
		},
	},
	{
		Title:       "Greek Island Hopping",
		Country:     "Greece",
		Image:       "https://images.unsplash.com/photo-1533105079780-92b9be482077?q=80&auto=format",
		Subtitle:    "Sun, Jul 9 - Wed, Jul 19",
		Description: "Experience the stunning beauty of Santorini, Mykonos, and Athens.",
		Category:    "Europe",
		Days:        10,
		Rating:      4.7,
		Reviews:     148,
		Price:       "$1,299",
		PriceValue:  1299,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Athens",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Athens and transfer to your hotel"},
					{Time: "Afternoon", Description: "Visit the Acropolis"},
					{Time: "Evening", Description: "Dinner in the Plaka district"},
				},
			},
		},
	},
	{
		Title:       "Nairobi Safari",
		Country:     "Kenya",
		Image:       "https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?q=80&auto=format",
		Subtitle:    "Mon, Mar 10 - Mon, Mar 17",
		Description: "Witness the incredible wildlife of Kenya on this safari adventure.",
		Category:    "Africa",
		Days:        7,
		Rating:      4.8,
		Reviews:     64,
		Price:       "$899",
		PriceValue:  899,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival to Nairobi",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Nairobi and transfer to your lodge"},
					{Time: "Afternoon", Description: "Rest and preparation for safari"},
					{Time: "Evening", Description: "Welcome dinner and safari briefing"},
				},
			},
		},
	},
	{
		Title:       "Moroccan Discovery",
		Country:     "Morocco",
		Image:       "https://images.unsplash.com/photo-1548018560-c7196548970d?q=80&auto=format",
		Subtitle:    "Thu, Nov 3 - Fri, Nov 11",
		Description: "Explore the vibrant markets, ancient medinas, and Sahara Desert in Morocco.",
		Category:    "Africa",
		Days:        8,
		Rating:      4.6,
		Reviews:     97,
		Price:       "$749",
		PriceValue:  749,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Marrakech",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Marrakech and transfer to your riad"},
					{Time: "Afternoon", Description: "Rest and refreshment"},
					{Time: "Evening", Description: "Welcome dinner in Jemaa el-Fnaa square"},
				},
			},
		},
	},
	{
		Title:       "Cape Town & Winelands",
		Country:     "South Africa",
		Image:       "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?q=80&auto=format",
		Subtitle:    "Tue, Jan 10 - Wed, Jan 18",
		Description: "Discover the beauty of Cape Town, Table Mountain, and the Cape Winelands.",
		Category:    "Africa",
		Days:        8,
		Rating:      4.7,
		Reviews:     109,
		Price:       "$999",
		PriceValue:  999,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Cape Town",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Cape Town and transfer to your hotel"},
					{Time: "Afternoon", Description: "Orientation walk along the V&A Waterfront"},
					{Time: "Evening", Description: "Welcome dinner with views of Table Mountain"},
				},
			},
		},
	},
	{
		Title:       "New York City Weekend",
		Country:     "United States",
		Image:       "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?q=80&auto=format",
		Subtitle:    "Fri, Oct 7 - Mon, Oct 10",
		Description: "Experience the energy and attractions of the Big Apple in a long weekend.",
		Category:    "North America",
		Days:        3,
		Rating:      4.6,
		Reviews:     128,
		Price:       "$649",
		PriceValue:  649,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in New York",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in New York and transfer to your hotel"},
					{Time: "Afternoon", Description: "Times Square and Midtown exploration"},
					{Time: "Evening", Description: "Broadway show experience"},
				},
			},
		},
	},
	{
		Title:       "Canadian Rockies",
		Country:     "Canada",
		Image:       "https://images.unsplash.com/photo-1503614472-8c93d56e92ce?q=80&auto=format",
		Subtitle:    "Mon, Jul 3 - Tue, Jul 11",
		Description: "Discover the breathtaking landscapes of Banff and Jasper National Parks.",
		Category:    "North America",
		Days:        8,
		Rating:      4.9,
		Reviews:     87,
		Price:       "$1,399",
		PriceValue:  1399,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Calgary",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Calgary and pick up rental car"},
					{Time: "Afternoon", Description: "Drive to Banff National Park"},
					{Time: "Evening", Description: "Check-in and orientation walk in Banff"},
				},
			},
		},
	},
	{
		Title:       "Mexico's Yucatan Peninsula",
		Country:     "Mexico",
		Image:       "https://images.unsplash.com/photo-1574866412308-32d9923e2530?q=80&auto=format",
		Subtitle:    "Tue, Dec 5 - Thu, Dec 14",
		Description: "Explore ancient Mayan ruins, stunning beaches, and colonial cities.",
		Category:    "North America",
		Days:        9,
		Rating:      4.7,
		Reviews:     114,
		Price:       "$849",
		PriceValue:  849,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Cancun",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Cancun and transfer to Playa del Carmen"},
					{Time: "Afternoon", Description: "Check-in and beach time"},
					{Time: "Evening", Description: "Welcome dinner on 5th Avenue"},
				},
			},
		},
	},
	{
		Title:       "Sydney & Great Barrier Reef",
		Country:     "Australia",
		Image:       "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?q=80&auto=format",
		Subtitle:    "Sat, Feb 4 - Thu, Feb 16",
		Description: "Experience the best of Sydney and the world's largest coral reef system.",
		Category:    "Oceania",
		Days:        12,
		Rating:      4.8,
		Reviews:     95,
		Price:       "$2,799",
		PriceValue:  2799,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Sydney",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Sydney and transfer to your hotel"},
					{Time: "Afternoon", Description: "Rest and acclimatization"},
					{Time: "Evening", Description: "Welcome dinner with views of Sydney Harbour"},
				},
			},
		},
	},
	{
		Title:       "New Zealand Adventure",
		Country:     "New Zealand",
		Image:       "https://images.unsplash.com/photo-1493606278519-11aa9f86e40a?q=80&auto=format",
		Subtitle:    "Wed, Mar 8 - Tue, Mar 21",
		Description: "Explore the stunning landscapes of New Zealand's North and South Islands.",
		Category:    "Oceania",
		Days:        14,
		Rating:      4.9,
		Reviews:     76,
		Price:       "$3,099",
		PriceValue:  3099,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Auckland",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Auckland and transfer to your hotel"},
					{Time: "Afternoon", Description: "Orientation walk in Auckland"},
					{Time: "Evening", Description: "Welcome dinner at Sky Tower"},
				},
			},
		},
	},
	{
		Title:       "Fiji Island Paradise",
		Country:     "Fiji",
		Image:       "https://images.unsplash.com/photo-1537956965359-7573183d1f57?q=80&auto=format",
		Subtitle:    "Fri, Sep 8 - Sat, Sep 16",
		Description: "Experience the ultimate relaxation on Fiji's pristine beaches and crystal waters.",
		Category:    "Oceania",
		Days:        8,
		Rating:      4.8,
		Reviews:     122,
		Price:       "$1,899",
		PriceValue:  1899,
		Itinerary: domain.Itinerary{
			{
				Day:   1,
				Title: "Arrival in Nadi",
				Activities: []domain.ItineraryActivity{
					{Time: "Morning", Description: "Arrive in Nadi and transfer to your island resort by boat"},
					{Time: "Afternoon", Description: "Check-in and beach time"},
					{Time: "Evening", Description: "Welcome dinner with traditional Fijian performance"},
				},
			},
		},
	},
}
