package component

// Wave — счётчики текущей волны.
type Wave struct {
	Number  int // номер волны, для которой запланированы появления
	Total   int // сколько врагов волна должна породить
	Spawned int // сколько уже появилось
}

// Exhausted — все запланированные появления уже произошли.
func (w *Wave) Exhausted() bool {
	return w.Total > 0 && w.Spawned >= w.Total
}
