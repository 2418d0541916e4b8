package metrics

// Nop заглушка доменных счетчиков для запуска с выключенными метриками
type Nop struct{}

func (Nop) IncSelectionClick(string)  {}
func (Nop) IncBookingCreated(string)  {}
func (Nop) IncBookingConflict(string) {}
