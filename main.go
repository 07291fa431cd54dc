package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Longhorn-Developers/UT-Dining-sub000/config"
	"github.com/Longhorn-Developers/UT-Dining-sub000/di"
	services "github.com/Longhorn-Developers/UT-Dining-sub000/service"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// plotStaticSchedules writes the compiled-in coffee shop schedules to HTML,
// handy for eyeballing the static table after edits.
func plotStaticSchedules() {
	for _, name := range []string{"Jester Java", "Prufrock's", "Union Coffee House"} {
		ws, ok := services.StaticScheduleFor(name)
		if !ok {
			continue
		}
		f, err := os.Create(fmt.Sprintf("schedule_%s.html", name))
		if err != nil {
			log.Printf("Could not create plot file for %s: %v", name, err)
			continue
		}
		if err := util.PlotWeeklyHours(f, name, ws); err != nil {
			log.Printf("Could not plot schedule for %s: %v", name, err)
		}
		f.Close()
	}
}

func main() {
	env := os.Getenv("APP_ENV")
	container := di.NewContainer(env)

	// plotStaticSchedules()

	fmt.Println("running initial refresh!")
	if err := container.SyncService.Sync(context.Background(), false); err != nil {
		log.Printf("Initial refresh failed, serving last-known cache: %v", err)
	}

	fmt.Println("starting periodic refresh job!")
	container.SyncService.StartPeriodicJob(config.SYNC_PERIODIC_JOB_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.DiningHttpServer.Start()
}
