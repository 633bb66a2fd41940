package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// Search finds flights between two locations on a date with enough
// free seats for the party.  The inner grouped subquery is the
// availability index: it counts Available seat_assignments per flight
// for the requested class and keeps only flights where the count is
// strictly greater than persons.  The date matches either the
// original schedule or the delay-updated departure.
func (r *FlightRepo) Search(ctx context.Context, q service.SearchQuery) ([]service.FlightMatch, error) {
	const query = `SELECT f.flight_id, f.aircraft_id, f.departure_airport, f.arrival_airport,
	                      f.departure_time, f.arrival_time, f.updated_departure_time,
	                      f.base_price_cents, f.delay_reason, f.created_at,
	                      da.airport_id, da.name, da.location, da.country,
	                      aa.airport_id, aa.name, aa.location, aa.country
	               FROM flights f
	               JOIN airports da ON da.airport_id = f.departure_airport
	               JOIN airports aa ON aa.airport_id = f.arrival_airport
	               JOIN (
	                   SELECT flight_id
	                   FROM seat_assignments
	                   WHERE class = ? AND status = 'Available'
	                   GROUP BY flight_id
	                   HAVING COUNT(*) > ?
	               ) avail ON avail.flight_id = f.flight_id
	               WHERE da.location = ? AND aa.location = ?
	                 AND (f.departure_time = ? OR f.updated_departure_time = ?)
	               ORDER BY f.departure_time, f.flight_id`
	rows, err := r.db.QueryContext(ctx, query,
		q.Class, q.Persons, q.From, q.To, q.Date, q.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]service.FlightMatch, 0)
	for rows.Next() {
		var m service.FlightMatch
		var reason sql.NullString
		if err := rows.Scan(
			&m.Flight.ID, &m.Flight.AircraftID, &m.Flight.DepartureAirport, &m.Flight.ArrivalAirport,
			&m.Flight.DepartureTime, &m.Flight.ArrivalTime, &m.Flight.UpdatedDepartureTime,
			&m.Flight.BasePriceCents, &reason, &m.Flight.CreatedAt,
			&m.From.ID, &m.From.Name, &m.From.Location, &m.From.Country,
			&m.To.ID, &m.To.Name, &m.To.Location, &m.To.Country,
		); err != nil {
			return nil, err
		}
		if reason.Valid {
			v := reason.String
			m.Flight.DelayReason = &v
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeparturesFrom lists every flight leaving the given origin with its
// destination location, country and base fare.  Used by the
// suggestion endpoint.
func (r *FlightRepo) DeparturesFrom(ctx context.Context, origin string) ([]service.RouteOption, error) {
	const query = `SELECT f.flight_id, f.base_price_cents, aa.location, aa.country
	               FROM flights f
	               JOIN airports da ON da.airport_id = f.departure_airport
	               JOIN airports aa ON aa.airport_id = f.arrival_airport
	               WHERE da.location = ?
	               ORDER BY f.flight_id`
	rows, err := r.db.QueryContext(ctx, query, origin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]service.RouteOption, 0)
	for rows.Next() {
		var o service.RouteOption
		if err := rows.Scan(&o.FlightID, &o.BasePriceCents, &o.Location, &o.Country); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
