package entities

// OrderStatus — состояние заказа в рабочем процессе.
type OrderStatus string

const (
	StatusNew        OrderStatus = "NEW"
	StatusReady      OrderStatus = "READY"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusDone       OrderStatus = "DONE"
	StatusAccepted   OrderStatus = "ACCEPTED"
	StatusToRemove   OrderStatus = "TO_REMOVE"
	StatusRemoved    OrderStatus = "REMOVED"
)

// AllowedStatusTransitions — статическая таблица допустимых переходов.
// Переходы из TO_REMOVE и REMOVED обратно в рабочие статусы —
// административный откат; TO_REMOVE -> REMOVED выполняет только фоновая
// финализация.
var AllowedStatusTransitions = map[OrderStatus][]OrderStatus{
	StatusNew:        {StatusReady, StatusToRemove},
	StatusReady:      {StatusNew, StatusInProgress, StatusToRemove},
	StatusInProgress: {StatusDone, StatusToRemove},
	StatusDone:       {StatusAccepted, StatusReady, StatusToRemove},
	StatusAccepted:   {StatusToRemove},
	StatusToRemove:   {StatusNew, StatusReady, StatusInProgress, StatusDone, StatusAccepted, StatusRemoved},
	StatusRemoved:    {StatusNew, StatusReady, StatusInProgress, StatusDone, StatusAccepted},
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) Valid() bool {
	_, ok := AllowedStatusTransitions[s]
	return ok
}

// CanTransit отвечает, разрешён ли переход s -> target по таблице.
func (s OrderStatus) CanTransit(target OrderStatus) bool {
	for _, allowed := range AllowedStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func OrderStatusValues() []OrderStatus {
	return []OrderStatus{
		StatusNew, StatusReady, StatusInProgress, StatusDone,
		StatusAccepted, StatusToRemove, StatusRemoved,
	}
}
