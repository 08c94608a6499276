package schedule

import "time"

// Slot é uma janela candidata de agendamento, derivada dos blocos de
// expediente. Nunca é persistida: recalculada a cada consulta.
type Slot struct {
	Start     time.Time `json:"start"` // UTC
	End       time.Time `json:"end"`   // UTC
	Available bool      `json:"available"`
}

// Interval é um intervalo ocupado por um agendamento existente.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps testa interseção de intervalos semiabertos [aStart,aEnd) e
// [bStart,bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// TileBlock fatia um bloco de expediente em janelas consecutivas de
// `duration`, a partir do início do bloco. Sobra menor que `duration`
// no fim do bloco é descartada.
//
// `day` é a meia-noite da data alvo no fuso do profissional; os horários
// do bloco são interpretados nesse fuso e os slots saem em UTC.
//
// Janelas que conflitam com `busy` são marcadas indisponíveis, nunca
// omitidas — o cliente renderiza "ocupado" no lugar de um buraco.
// Janelas com início até `cutoff` (agora + antecedência mínima) são
// omitidas: já não são reserváveis.
func TileBlock(day time.Time, startHM, endHM string, duration time.Duration, busy []Interval, cutoff time.Time) []Slot {
	if duration <= 0 {
		return nil
	}

	startMin, err := ParseMinutes(startHM)
	if err != nil {
		return nil
	}
	endMin, err := ParseMinutes(endHM)
	if err != nil || endMin <= startMin {
		return nil
	}

	blockStart := day.Add(time.Duration(startMin) * time.Minute)
	blockEnd := day.Add(time.Duration(endMin) * time.Minute)

	var slots []Slot
	for cur := blockStart; !cur.Add(duration).After(blockEnd); cur = cur.Add(duration) {
		if !cur.After(cutoff) {
			continue
		}

		end := cur.Add(duration)
		slots = append(slots, Slot{
			Start:     cur.UTC(),
			End:       end.UTC(),
			Available: !overlapsAny(cur, end, busy),
		})
	}

	return slots
}

// WithinBlock verifica, na admissão de um agendamento, se a janela
// [start,end) cai inteira dentro do bloco e está alinhada à grade de
// fatiamento (offset do início do bloco múltiplo de `duration`).
// Fecha a brecha de janelas forjadas que apenas evitam conflitos.
func WithinBlock(day time.Time, startHM, endHM string, duration time.Duration, start, end time.Time) bool {
	if duration <= 0 || end.Sub(start) != duration {
		return false
	}

	startMin, err := ParseMinutes(startHM)
	if err != nil {
		return false
	}
	endMin, err := ParseMinutes(endHM)
	if err != nil {
		return false
	}

	blockStart := day.Add(time.Duration(startMin) * time.Minute)
	blockEnd := day.Add(time.Duration(endMin) * time.Minute)

	if start.Before(blockStart) || end.After(blockEnd) {
		return false
	}

	offset := start.Sub(blockStart)
	return offset%duration == 0
}
