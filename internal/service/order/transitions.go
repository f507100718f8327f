package order

import "dispatch/internal/entities"

// successors — граф жизненного цикла заказа. Каждый статус имеет не больше
// одного прямого преемника; cancelled достижим из любого нетерминального.
var successors = map[entities.OrderStatusType]entities.OrderStatusType{
	entities.OrderPlaced:          entities.OrderAccepted,
	entities.OrderAccepted:        entities.OrderReady,
	entities.OrderReady:           entities.OrderAssigned,
	entities.OrderAssigned:        entities.OrderEnRouteToPickup,
	entities.OrderEnRouteToPickup: entities.OrderPickedUp,
	entities.OrderPickedUp:        entities.OrderOutForDelivery,
	entities.OrderOutForDelivery:  entities.OrderDelivered,
}

func isKnownStatus(status entities.OrderStatusType) bool {
	if status == entities.OrderDelivered || status == entities.OrderCancelled {
		return true
	}
	_, ok := successors[status]
	return ok
}

func CanTransition(from, to entities.OrderStatusType) bool {
	if from.IsTerminal() {
		return false
	}
	if to == entities.OrderCancelled {
		return true
	}
	return successors[from] == to
}

// roleAllowed проверяет право роли на ребро перехода. Система (диспатч,
// фоновые задачи, consumer событий) может вести заказ по любому легальному
// ребру. Принадлежность курьера назначенной доставке проверяется отдельно.
func roleAllowed(to entities.OrderStatusType, role entities.ActorRole) bool {
	if role == entities.RoleSystem {
		return true
	}

	switch to {
	case entities.OrderAccepted, entities.OrderReady:
		return role == entities.RoleVendor
	case entities.OrderEnRouteToPickup, entities.OrderPickedUp,
		entities.OrderOutForDelivery, entities.OrderDelivered:
		return role == entities.RoleCourier
	case entities.OrderCancelled:
		return role == entities.RoleVendor || role == entities.RoleCustomer
	default:
		// assigned проставляет только финализация назначения.
		return false
	}
}
