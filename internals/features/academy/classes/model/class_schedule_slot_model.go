// file: internals/features/academy/classes/model/class_schedule_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassScheduleSlotModel: una ocurrencia semanal recurrente de la clase.
//
// El día se guarda como texto crudo. Las filas heredadas traen de todo
// ("Martes", "mié", "2", nombres en inglés...) y nunca se validaron al
// escribir, así que la interpretación es exclusiva del normalizador en
// schedule/service — este modelo no reinterpreta nada.
type ClassScheduleSlotModel struct {
	// PK
	ClassScheduleSlotID uuid.UUID `gorm:"column:class_schedule_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_schedule_slot_id"`

	ClassScheduleSlotClassID uuid.UUID `gorm:"column:class_schedule_slot_class_id;type:uuid;not null;index" json:"class_schedule_slot_class_id"`

	// Token de día crudo (ver arriba)
	ClassScheduleSlotDay string `gorm:"column:class_schedule_slot_day;type:varchar(20);not null" json:"class_schedule_slot_day"`

	ClassScheduleSlotStartTime time.Time `gorm:"column:class_schedule_slot_start_time;type:time;not null" json:"class_schedule_slot_start_time"`
	ClassScheduleSlotEndTime   time.Time `gorm:"column:class_schedule_slot_end_time;type:time;not null" json:"class_schedule_slot_end_time"`

	// Audit
	ClassScheduleSlotCreatedAt time.Time      `gorm:"column:class_schedule_slot_created_at;type:timestamptz;not null;autoCreateTime" json:"class_schedule_slot_created_at"`
	ClassScheduleSlotUpdatedAt time.Time      `gorm:"column:class_schedule_slot_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_schedule_slot_updated_at"`
	ClassScheduleSlotDeletedAt gorm.DeletedAt `gorm:"column:class_schedule_slot_deleted_at;index" json:"class_schedule_slot_deleted_at,omitempty"`
}

func (ClassScheduleSlotModel) TableName() string { return "class_schedule_slots" }
