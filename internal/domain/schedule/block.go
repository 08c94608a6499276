package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Dias da semana em pt-BR (0 = domingo ... 6 = sábado), usados nas mensagens
// de validação exibidas na tela de expediente.
var DayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// BlockInput é um bloco candidato de expediente enviado no replace semanal.
type BlockInput struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
}

// ParseMinutes converte "HH:MM" em minutos desde a meia-noite.
func ParseMinutes(hm string) (int, error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("horário inválido: %q", hm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("horário inválido: %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("horário inválido: %q", hm)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("horário inválido: %q", hm)
	}

	return h*60 + m, nil
}

// NormalizeHM re-formata um horário aceito por ParseMinutes no padrão
// de armazenamento "HH:MM" ("8:5" vira "08:05").
func NormalizeHM(hm string) (string, error) {
	min, err := ParseMinutes(hm)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60), nil
}

// ======================================================
// Validação do expediente semanal
// ======================================================

// ValidateWeek valida o conjunto completo de blocos de um replace semanal.
//
// Retorna a lista de violações em linguagem humana (vazia = válido).
// Violações são dados, não erros: a tela de expediente mostra todas de
// uma vez, em vez de falhar na primeira.
//
// Regras por dia:
//   - início < fim em cada bloco
//   - blocos ordenados por início não podem se sobrepor
//     (início == fim do anterior é permitido: blocos "colados" são válidos)
//
// Dias diferentes nunca conflitam entre si.
func ValidateWeek(blocks []BlockInput) []string {
	var violations []string

	type parsed struct {
		start, end int
		in         BlockInput
	}
	days := make(map[int][]parsed)

	for _, b := range blocks {
		if b.DayOfWeek < 0 || b.DayOfWeek > 6 {
			violations = append(violations,
				fmt.Sprintf("Dia da semana inválido: %d (use 0=domingo a 6=sábado).", b.DayOfWeek))
			continue
		}

		day := DayNames[b.DayOfWeek]

		start, errStart := ParseMinutes(b.StartTime)
		if errStart != nil {
			violations = append(violations,
				fmt.Sprintf("%s: Formato de hora inválido: '%s'. Use HH:MM (ex: 08:00).", day, b.StartTime))
		}
		end, errEnd := ParseMinutes(b.EndTime)
		if errEnd != nil {
			violations = append(violations,
				fmt.Sprintf("%s: Formato de hora inválido: '%s'. Use HH:MM (ex: 08:00).", day, b.EndTime))
		}
		if errStart != nil || errEnd != nil {
			continue
		}

		if start >= end {
			violations = append(violations,
				fmt.Sprintf("%s: Horário de início (%s) deve ser antes do fim (%s).", day, b.StartTime, b.EndTime))
			continue
		}

		days[b.DayOfWeek] = append(days[b.DayOfWeek], parsed{start: start, end: end, in: b})
	}

	for dow := 0; dow <= 6; dow++ {
		list := days[dow]
		if len(list) < 2 {
			continue
		}

		sort.Slice(list, func(i, j int) bool { return list[i].start < list[j].start })

		for j := 1; j < len(list); j++ {
			prev, cur := list[j-1], list[j]
			if cur.start < prev.end {
				violations = append(violations,
					fmt.Sprintf("%s: Blocos se sobrepõem (%s-%s e %s-%s).",
						DayNames[dow],
						prev.in.StartTime, prev.in.EndTime,
						cur.in.StartTime, cur.in.EndTime))
			}
		}
	}

	return violations
}
