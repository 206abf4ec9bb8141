package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"pest-assess-be/internal/entity"
	"pest-assess-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}

	slots := map[string]string{}
	if len(l.Slots) > 0 {
		// A decode failure leaves the snapshot empty; the flat contact
		// columns still carry the essentials.
		_ = json.Unmarshal(l.Slots, &slots)
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Lead{
		Id:            l.Id,
		SessionId:     l.SessionId,
		PestType:      l.PestType,
		SeverityTier:  l.SeverityTier,
		Slots:         slots,
		ContactName:   l.ContactName,
		ContactPhone:  l.ContactPhone,
		ContactEmail:  l.ContactEmail,
		ContactCity:   l.ContactCity,
		PreferredTime: l.PreferredTime,
		Status:        l.Status,
		QualifiedAt:   l.QualifiedAt,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}

	var slots datatypes.JSON
	if l.Slots != nil {
		if raw, err := json.Marshal(l.Slots); err == nil {
			slots = datatypes.JSON(raw)
		}
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	status := l.Status
	if status == "" {
		status = entity.LeadStatusNew
	}

	return &model.Lead{
		Id:            l.Id,
		SessionId:     l.SessionId,
		PestType:      l.PestType,
		SeverityTier:  l.SeverityTier,
		Slots:         slots,
		ContactName:   l.ContactName,
		ContactPhone:  l.ContactPhone,
		ContactEmail:  l.ContactEmail,
		ContactCity:   l.ContactCity,
		PreferredTime: l.PreferredTime,
		Status:        status,
		QualifiedAt:   l.QualifiedAt,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *LeadMapper) ToEntities(leads []*model.Lead) []*entity.Lead {
	entities := make([]*entity.Lead, len(leads))
	for i, l := range leads {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
