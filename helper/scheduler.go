package helper

import (
	"context"
	"fmt"
	"time"
	"travel_manager/config"
	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/logger"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	sweepScheduler  *cron.Cron
	digestScheduler gocron.Scheduler
	schedulerCld    *cloudinary.Cloudinary
)

// StartMaintenanceScheduler wires the hourly orphan-photo sweep and the
// daily unpaid digest mail.
func StartMaintenanceScheduler(cld *cloudinary.Cloudinary) {
	schedulerCld = cld

	sweepScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := sweepScheduler.AddFunc("@hourly", sweepOrphanPhotos); err != nil {
		logger.Error("could not start orphan photo sweep", err)
		return
	}
	sweepScheduler.Start()
	logger.Success("Orphan photo sweep started (hourly)")

	s, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		logger.Error("could not create digest scheduler", err)
		return
	}
	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(7, 0, 0))),
		gocron.NewTask(sendUnpaidDigest),
	)
	if err != nil {
		logger.Error("could not schedule unpaid digest", err)
		return
	}
	s.Start()
	digestScheduler = s
	logger.Success("Unpaid digest scheduled (daily 07:00)")
}

func StopMaintenanceScheduler() {
	if sweepScheduler != nil {
		sweepScheduler.Stop()
	}
	if digestScheduler != nil {
		digestScheduler.Shutdown()
	}
}

// sweepOrphanPhotos retries storage destroys that failed at delete time.
func sweepOrphanPhotos() {
	var orphans []model.OrphanPhoto
	if err := database.DB.Find(&orphans).Error; err != nil {
		logger.Error("orphan sweep query failed", err)
		return
	}
	for _, orphan := range orphans {
		_, err := schedulerCld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: orphan.PublicId})
		if err != nil {
			logger.Error("orphan destroy still failing for "+orphan.PublicId, err)
			continue
		}
		if err := database.DB.Delete(&model.OrphanPhoto{}, orphan.ID).Error; err != nil {
			logger.Error("could not dequeue orphan "+orphan.PublicId, err)
		}
	}
}

// sendUnpaidDigest mails the office a summary of bookings still owing.
func sendUnpaidDigest() {
	office := config.Config("OFFICE_EMAIL")
	if office == "" {
		return
	}

	db := database.DB
	unpaid, err := UnpaidCount(db, "")
	if err != nil {
		logger.Error("unpaid digest count failed", err)
		return
	}
	if unpaid == 0 {
		return
	}

	var pax int64
	err = db.Model(&model.Booking{}).
		Where("payment_status <> ?", constants.PAYMENT_PAID).
		Select("COALESCE(SUM(total_members), 0)").
		Scan(&pax).Error
	if err != nil {
		logger.Error("unpaid digest pax sum failed", err)
		return
	}

	if err := utils.SendUnpaidDigestEmail(office, unpaid, pax); err != nil {
		logger.Error("unpaid digest mail failed", err)
		return
	}
	logger.Info(fmt.Sprintf("unpaid digest sent: %d bookings, %d pax", unpaid, pax))
}
