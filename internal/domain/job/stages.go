package job

import "strings"

// ===============================
// Stage sequence
// ===============================

// Sequência fixa de etapas de um job. A ordem importa: a última etapa
// concluída encerra o job.
const (
	StageCheckIn    = "Check-in"
	StageWash       = "Wash"
	StageInterior   = "Interior"
	StagePolishing  = "Polishing"
	StageInspection = "Inspection"
	StageCompleted  = "Completed"
)

func StageSequence() []string {
	return []string{
		StageCheckIn,
		StageWash,
		StageInterior,
		StagePolishing,
		StageInspection,
		StageCompleted,
	}
}

// NormalizeStageName tolera o esquema antigo de nomes ("check in",
// "CHECK-IN", "Check_In") reduzindo tudo a minúsculas com hífen.
// Aplicada na fronteira de leitura, nunca dentro da transição.
func NormalizeStageName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", " ")
	n = strings.Join(strings.Fields(n), "-")
	return n
}

func IsTerminalStage(name string) bool {
	return NormalizeStageName(name) == NormalizeStageName(StageCompleted)
}

// StageIndex localiza a etapa na sequência canônica (-1 se desconhecida)
func StageIndex(name string) int {
	target := NormalizeStageName(name)
	for i, s := range StageSequence() {
		if NormalizeStageName(s) == target {
			return i
		}
	}
	return -1
}
