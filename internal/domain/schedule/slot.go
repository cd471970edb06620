package schedule

import (
	"time"

	"github.com/agendly/booking-api/internal/models"
)

// Duração padrão quando nenhum serviço foi escolhido
const DefaultSlotMinutes = 30

type TimeSlot struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}

func slotID(start, end time.Time) string {
	return start.Format(time.RFC3339) + "-" + end.Format(time.RFC3339)
}

// GenerateSlots gera a grade fixa de horários entre open e close na data
// informada. Slots não se sobrepõem e o último slot parcial é descartado
// (nunca ultrapassa o fechamento). Entrada malformada degrada para vazio.
func GenerateSlots(date time.Time, openTime, closeTime string, durationMin int) []TimeSlot {
	if durationMin <= 0 {
		durationMin = DefaultSlotMinutes
	}

	open, err := ParseHM(date, openTime)
	if err != nil {
		return []TimeSlot{}
	}
	closeAt, err := ParseHM(date, closeTime)
	if err != nil {
		return []TimeSlot{}
	}

	duration := time.Duration(durationMin) * time.Minute
	slots := []TimeSlot{}

	for cur := open; !cur.Add(duration).After(closeAt); cur = cur.Add(duration) {
		end := cur.Add(duration)
		slots = append(slots, TimeSlot{
			ID:          slotID(cur, end),
			StartTime:   cur,
			EndTime:     end,
			IsAvailable: true,
		})
	}

	return slots
}

// Overlaps aplica o teste padrão de interseção de intervalos.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// FilterAvailable remove da grade os slots que conflitam com algum
// agendamento cujo status ainda ocupa o horário.
func FilterAvailable(slots []TimeSlot, appointments []models.Appointment) []TimeSlot {
	out := []TimeSlot{}

	for _, slot := range slots {
		conflict := false
		for _, ap := range appointments {
			if !Blocks(Status(ap.Status)) {
				continue
			}
			if Overlaps(slot.StartTime, slot.EndTime, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			out = append(out, slot)
		}
	}

	return out
}

// AvailableSlots calcula os horários livres de uma data: grade fixa do
// expediente filtrada pelos agendamentos ativos do dia. Puro e idempotente,
// entradas idênticas sempre produzem a mesma sequência em ordem cronológica.
func AvailableSlots(
	date time.Time,
	hours *models.BusinessHours,
	durationMin int,
	appointments []models.Appointment,
) []TimeSlot {

	if hours == nil || !hours.IsOpen {
		return []TimeSlot{}
	}

	slots := GenerateSlots(date, hours.OpenTime, hours.CloseTime, durationMin)
	return FilterAvailable(slots, appointments)
}
