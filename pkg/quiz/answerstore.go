package quiz

// AnswerStore acumula las selecciones del estudiante durante una sesión.
// Un solo dueño lógico (la sesión activa) lo muta, así que no requiere
// locking. No valida al escribir: una pregunta puede quedar sin responder
// y la validación se difiere al momento del envío.
type AnswerStore struct {
	selections map[string][]string // id de pregunta -> claves en orden de selección
}

// NewAnswerStore crea un almacén de respuestas vacío
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{selections: make(map[string][]string)}
}

// FromSelections crea un almacén a partir de selecciones existentes
// (por ejemplo, una sesión recuperada de Redis)
func FromSelections(selections map[string][]string) *AnswerStore {
	store := NewAnswerStore()
	for questionID, keys := range selections {
		store.selections[questionID] = append([]string(nil), keys...)
	}
	return store
}

// SetAnswer reemplaza todas las selecciones de una pregunta.
// La última escritura gana.
func (s *AnswerStore) SetAnswer(questionID string, selections []string) {
	s.selections[questionID] = append([]string(nil), selections...)
}

// ToggleOption agrega o quita una clave de la pregunta sin afectar a las
// demás. Dos toggles seguidos dejan la pregunta como estaba.
func (s *AnswerStore) ToggleOption(questionID, optionKey string) {
	current := s.selections[questionID]
	for i, key := range current {
		if key == optionKey {
			s.selections[questionID] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
	s.selections[questionID] = append(current, optionKey)
}

// Answer retorna las selecciones actuales de una pregunta, o una lista
// vacía si no fue respondida
func (s *AnswerStore) Answer(questionID string) []string {
	if keys, ok := s.selections[questionID]; ok {
		return append([]string(nil), keys...)
	}
	return []string{}
}

// Selections retorna una copia de todas las selecciones
func (s *AnswerStore) Selections() map[string][]string {
	out := make(map[string][]string, len(s.selections))
	for questionID, keys := range s.selections {
		out[questionID] = append([]string(nil), keys...)
	}
	return out
}
