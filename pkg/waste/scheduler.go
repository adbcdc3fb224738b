package waste

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// StartWeeklyRollup schedules the waste snapshot for every Sunday at midnight,
// mirroring the weekly aggregation the dashboard trend chart reads from.
func StartWeeklyRollup(wasteService WasteService) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 0 * * 0", func() {
		log.Println("running scheduled weekly waste rollup")
		if err := wasteService.StoreWeeklyWaste(context.Background()); err != nil {
			log.Printf("weekly waste rollup failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("error scheduling weekly waste rollup: %v", err)
	}
	c.Start()
	return c
}
