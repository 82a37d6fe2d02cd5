package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/forkful/client/config"
	"github.com/forkful/client/internal/app"
	"github.com/forkful/client/internal/notify"
	"github.com/forkful/client/internal/types"
)

func main() {
	search := flag.String("search", "", "free-text recipe search")
	pages := flag.Int("pages", 1, "number of list pages to load")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	a := app.New(cfg, notify.LogNotifier{})
	ctx := context.Background()

	if user, err := a.Accounts.SessionCheck(ctx); err != nil {
		log.Printf("session check failed: %v", err)
	} else if user != nil {
		log.Printf("signed in as %s", user.ProfileName)
	}

	p := a.NewPager()
	p.SetFilters(types.Filters{Search: *search})
	for i := 0; i < *pages; i++ {
		loaded, err := p.LoadMore(ctx)
		if err != nil {
			log.Fatalf("failed to load recipes: %v", err)
		}
		if !loaded {
			break
		}
	}

	for _, r := range p.Recipes() {
		fmt.Printf("#%d %s (%s, serves %d) %.1f stars\n",
			r.ID, r.Name, r.CookingTime, r.ServingSize, r.AverageRating)
	}
}
