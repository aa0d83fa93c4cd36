// Package pricing разрешает цену за станцию по разреженной таблице
// тарифов {игроки x длительность} с детерминированными правилами
// восполнения отсутствующих записей.
package pricing

import (
	"github.com/playgrid/PGC-StationService/internal/domain"
)

// Quote результат разрешения цены
type Quote struct {
	UnitPrice int // цена за одну станцию
	// Undefined выставляется, когда ни одно правило не подошло и цена
	// упала в 0. Это пробел в настройке тарифов, а не отказ: бронь
	// может продолжиться по нулевой цене, но персонал должен увидеть флаг.
	Undefined bool
}

// Total возвращает полную стоимость брони на units станций.
// Ось тарифа - игроки/контроллеры на одной станции; количество
// станций - независимая ось и в таблицу тарифов не входит.
func (q Quote) Total(units int) int {
	return q.UnitPrice * units
}

// Resolve разрешает цену за станцию по правилам, в порядке приоритета:
//  1. точная запись (stationType, players, duration);
//  2. 90 минут = тариф 60 + тариф 30 (отсутствующий подтариф считается 0);
//  3. 120 минут = тариф 60 * 2;
//  4. 180 минут = тариф 60 * 3;
//  5. иначе цена 0 с флагом Undefined.
func Resolve(tiers domain.TierTable, st domain.StationType, players, durationMinutes int) Quote {
	if price, ok := tiers.Lookup(st, players, durationMinutes); ok {
		return Quote{UnitPrice: price}
	}

	base, hasBase := tiers.Lookup(st, players, domain.TierDurationBase)
	short, hasShort := tiers.Lookup(st, players, domain.TierDurationShort)

	switch durationMinutes {
	case 90:
		if hasBase || hasShort {
			return Quote{UnitPrice: base + short}
		}
	case 120:
		if hasBase {
			return Quote{UnitPrice: base * 2}
		}
	case 180:
		if hasBase {
			return Quote{UnitPrice: base * 3}
		}
	}

	return Quote{UnitPrice: 0, Undefined: true}
}
