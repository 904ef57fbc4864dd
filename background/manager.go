package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloodlink-inc/bloodlink-api/external/geoinfo"
	"github.com/bloodlink-inc/bloodlink-api/external/push"
	"github.com/bloodlink-inc/bloodlink-api/store"
)

// BackgroundManager is a struct for bloodlink background manager
type BackgroundManager struct {
	store store.BloodlinkCore

	mongo store.MongoStore

	notifier NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	geoClient, err := geoinfo.New(viper.GetString("map.key"))
	if err != nil {
		log.WithError(err).Panic("create geo client")
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		geoClient,
	)
	bloodlinkCore := store.NewBloodlinkStore(ormDB, mongoStore)

	pushClient := push.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      bloodlinkCore,
		mongo:      mongoStore,
		notifier:   NewPushNotificationCenter(viper.GetString("push.appid"), pushClient),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("bloodlink-worker", 5)
	return m.worker.Launch()
}
