package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

var (
	ErrCampNotFound    = fmt.Errorf("camp request not found")
	ErrCampNotEditable = fmt.Errorf("the camp request has been reviewed and can no longer be changed")
)

// CreateCampRequest files a new camp proposal in pending state
func (s *BloodlinkStore) CreateCampRequest(camp schema.CampRequest) (*schema.CampRequest, error) {
	camp.Status = schema.CampStatusPending

	if err := s.ormDB.Create(&camp).Error; err != nil {
		return nil, err
	}

	return &camp, nil
}

// GetCampRequest finds a camp proposal by its ID
func (s *BloodlinkStore) GetCampRequest(campID uint) (*schema.CampRequest, error) {
	var camp schema.CampRequest
	if err := s.ormDB.Where("id = ?", campID).First(&camp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCampNotFound
		}
		return nil, err
	}

	return &camp, nil
}

// ListCampRequests returns the camp proposals filed by an account, newest first
func (s *BloodlinkStore) ListCampRequests(accountID string) ([]schema.CampRequest, error) {
	camps := make([]schema.CampRequest, 0)
	if err := s.ormDB.
		Where("user_id = ?", accountID).
		Order("created_at desc").
		Find(&camps).Error; err != nil {
		return nil, err
	}

	return camps, nil
}

// ListPendingCampRequests returns every proposal still waiting for review,
// oldest first so reviewers work through the backlog in order
func (s *BloodlinkStore) ListPendingCampRequests() ([]schema.CampRequest, error) {
	camps := make([]schema.CampRequest, 0)
	if err := s.ormDB.
		Where("status = ?", schema.CampStatusPending).
		Order("created_at asc").
		Find(&camps).Error; err != nil {
		return nil, err
	}

	return camps, nil
}

// UpdateCampRequest saves an edited proposal. The query pins the owner and
// the pending state; a reviewed proposal refuses the edit.
func (s *BloodlinkStore) UpdateCampRequest(accountID string, camp schema.CampRequest) error {
	result := s.ormDB.Model(schema.CampRequest{}).
		Where("id = ? AND user_id = ? AND status = ?", camp.ID, accountID, schema.CampStatusPending).
		Updates(map[string]interface{}{
			"organization_name": camp.OrganizationName,
			"contact_person":    camp.ContactPerson,
			"phone":             camp.Phone,
			"proposed_date":     camp.ProposedDate,
			"venue_address":     camp.VenueAddress,
			"expected_donors":   camp.ExpectedDonors,
			"facilities":        camp.Facilities,
			"notes":             camp.Notes,
			"updated_at":        camp.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampNotEditable
	}

	return nil
}

// DeleteCampRequest withdraws a pending proposal. A reviewed proposal stays
// on record.
func (s *BloodlinkStore) DeleteCampRequest(accountID string, campID uint) error {
	result := s.ormDB.
		Where("id = ? AND user_id = ? AND status = ?", campID, accountID, schema.CampStatusPending).
		Delete(schema.CampRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampNotEditable
	}

	return nil
}

// ReviewCampRequest confirms or rejects a pending camp proposal
func (s *BloodlinkStore) ReviewCampRequest(campID uint, confirm bool) error {
	status := schema.CampStatusConfirmed
	if !confirm {
		status = schema.CampStatusRejected
	}

	result := s.ormDB.Model(schema.CampRequest{}).
		Where("id = ? AND status = ?", campID, schema.CampStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampNotEditable
	}

	return nil
}
