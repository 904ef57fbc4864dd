package store

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jinzhu/gorm"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

const slotCacheSize = 64

// bloodlink main datastore
type BloodlinkCore interface {
	Ping() error

	// Appointment
	BookAppointment(appointment schema.Appointment) (*schema.Appointment, error)
	BookedSlots(date string) ([]string, error)
	ListAppointments(accountID string) ([]schema.Appointment, error)
	GetAppointmentByRequest(requestID string) (*schema.Appointment, error)
	DeleteAppointmentByRequest(accountID, requestID string) error
	ReviewAppointment(appointmentID uint, approve bool) error
	CloseAppointment(appointmentID uint, completed bool) error

	// Camp
	CreateCampRequest(camp schema.CampRequest) (*schema.CampRequest, error)
	GetCampRequest(campID uint) (*schema.CampRequest, error)
	ListCampRequests(accountID string) ([]schema.CampRequest, error)
	ListPendingCampRequests() ([]schema.CampRequest, error)
	UpdateCampRequest(accountID string, camp schema.CampRequest) error
	DeleteCampRequest(accountID string, campID uint) error
	ReviewCampRequest(campID uint, confirm bool) error
}

// BloodlinkStore is an implementation of BloodlinkCore
type BloodlinkStore struct {
	ormDB     *gorm.DB
	mongo     MongoStore
	slotCache *lru.Cache[string, []string]
}

func NewBloodlinkStore(ormDB *gorm.DB, mongo MongoStore) *BloodlinkStore {
	cache, err := lru.New[string, []string](slotCacheSize)
	if err != nil {
		panic(err)
	}

	return &BloodlinkStore{
		ormDB:     ormDB,
		mongo:     mongo,
		slotCache: cache,
	}
}

// Ping is to check the storage health status
func (s *BloodlinkStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Migrate creates the relational tables and the partial unique index that
// keeps one active booking per slot. Rejected and cancelled rows fall out of
// the index so their slots become bookable again.
func (s *BloodlinkStore) Migrate() error {
	if err := s.ormDB.AutoMigrate(
		&schema.Appointment{},
		&schema.CampRequest{},
	).Error; err != nil {
		return err
	}

	return s.ormDB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_active_slot
		ON donation_appointments (appointment_date, appointment_time)
		WHERE appointment_status != 'rejected' AND donation_status != 'cancelled'`,
	).Error
}
