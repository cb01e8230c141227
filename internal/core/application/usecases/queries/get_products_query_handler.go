package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/producer"
	"ricemarket/internal/core/domain/model/product"
	"ricemarket/internal/core/domain/services"
)

// GetProductsQueryHandler reads the available product listing from the
// database, joining in each producer's delivery zone so the range filter can
// run without extra round trips.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product listing queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// productRow is one scanned row of the listing join.
type productRow struct {
	product      *product.Product
	baseLat      sql.NullFloat64
	baseLon      sql.NullFloat64
	radiusKm     decimal.NullDecimal
	producerID   kernel.UUID
	producerUser kernel.UUID
	businessName string
}

// Handle executes the product listing query.
// Only available products are returned, sorted by name. With a producer
// filter only that producer's products are listed; with a consumer location
// the delivery range filter drops products of out-of-range producers.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			p.id,
			p.producer_id,
			p.name,
			p.description,
			p.price_yen_per_kg,
			p.stock_kg,
			pr.user_id,
			pr.business_name,
			pr.base_latitude,
			pr.base_longitude,
			pr.delivery_radius_km
		FROM products p
		JOIN producers pr ON pr.id = p.producer_id
		WHERE p.available = TRUE
	`
	args := make([]any, 0, 1)
	if query.ProducerID() != nil {
		sqlText += " AND p.producer_id = ?"
		args = append(args, query.ProducerID().Bytes())
	}
	sqlText += " ORDER BY p.name"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scanned, err := h.scanRows(rows)
	if err != nil {
		return nil, err
	}

	kept := make([]*product.Product, 0, len(scanned))
	for _, row := range scanned {
		kept = append(kept, row.product)
	}

	if near := query.Near(); near != nil {
		producers, buildErr := h.buildProducers(scanned)
		if buildErr != nil {
			return nil, buildErr
		}
		kept = services.NewDeliveryZoneFilter().Filter(kept, producers, *near)
	}

	responses := make([]GetProductsQueryResponse, 0, len(kept))
	for _, p := range kept {
		responses = append(responses, GetProductsQueryResponse{
			ID:            p.ID(),
			ProducerID:    p.ProducerID(),
			Name:          p.Name(),
			Description:   p.Description(),
			PriceYenPerKg: p.PriceYenPerKg(),
			StockKg:       p.StockKg(),
		})
	}

	return responses, nil
}

func (h GetProductsQueryHandler) scanRows(rows *sql.Rows) ([]productRow, error) {
	scanned := make([]productRow, 0)

	for rows.Next() {
		var (
			id, rawProducerID, rawUserID uuid.UUID
			name, description            string
			businessName                 string
			price, stock                 decimal.Decimal
			baseLat, baseLon             sql.NullFloat64
			radiusKm                     decimal.NullDecimal
		)

		if err := rows.Scan(&id, &rawProducerID, &name, &description,
			&price, &stock, &rawUserID, &businessName, &baseLat, &baseLon, &radiusKm); err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		producerID, err := kernel.UUIDFromBytes(rawProducerID[:])
		if err != nil {
			return nil, err
		}
		producerUser, err := kernel.UUIDFromBytes(rawUserID[:])
		if err != nil {
			return nil, err
		}

		p, err := product.RestoreProduct(productID, producerID, name, description,
			price, stock, true)
		if err != nil {
			return nil, err
		}

		scanned = append(scanned, productRow{
			product:      p,
			baseLat:      baseLat,
			baseLon:      baseLon,
			radiusKm:     radiusKm,
			producerID:   producerID,
			producerUser: producerUser,
			businessName: businessName,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scanned, nil
}

// buildProducers reconstructs producer aggregates from the joined zone
// columns, one per distinct producer in the listing.
func (h GetProductsQueryHandler) buildProducers(
	rows []productRow,
) (map[kernel.UUID]*producer.Producer, error) {
	producers := make(map[kernel.UUID]*producer.Producer, len(rows))

	for _, row := range rows {
		if _, exists := producers[row.producerID]; exists {
			continue
		}

		var base *kernel.GeoPoint
		if row.baseLat.Valid && row.baseLon.Valid {
			point, err := kernel.NewGeoPoint(row.baseLat.Float64, row.baseLon.Float64)
			if err != nil {
				return nil, err
			}
			base = &point
		}

		var radius *decimal.Decimal
		if row.radiusKm.Valid {
			radius = &row.radiusKm.Decimal
		}

		prod, err := producer.RestoreProducer(
			row.producerID, row.producerUser, row.businessName, base, radius)
		if err != nil {
			return nil, err
		}
		producers[row.producerID] = prod
	}

	return producers, nil
}
