package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/order"
)

// GetOrdersQueryHandler reads the per-actor order listing from the database.
// Orders are fetched in one query and their item lines in a second, batched
// over all listed orders at once.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order listing query, newest orders first.
// Consumers are scoped to orders they placed; producers to orders addressed
// to their producer profile.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scopeColumn := "consumer_id"
	scopeID := query.Actor().UserID()
	if query.Actor().Role() == account.RoleProducer {
		scopeColumn = "producer_id"
		scopeID = *query.Actor().ProducerID()
	}

	orders := make([]GetOrdersQueryResponse, 0)
	orderIndex := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			consumer_id,
			producer_id,
			status,
			delivery_address,
			total_yen,
			created_at
		FROM orders
		WHERE `+scopeColumn+` = ?
		ORDER BY created_at DESC
	`, scopeID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, rawConsumerID, rawProducerID uuid.UUID
			status                           int
			deliveryAddress                  string
			totalYen                         decimal.Decimal
			createdAt                        time.Time
		)

		if err = rows.Scan(&id, &rawConsumerID, &rawProducerID,
			&status, &deliveryAddress, &totalYen, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		consumerID, idErr := kernel.UUIDFromBytes(rawConsumerID[:])
		if idErr != nil {
			return nil, idErr
		}
		producerID, idErr := kernel.UUIDFromBytes(rawProducerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderIndex[orderID] = len(orders)
		orders = append(orders, GetOrdersQueryResponse{
			ID:              orderID,
			ConsumerID:      consumerID,
			ProducerID:      producerID,
			Status:          order.Status(status).String(),
			DeliveryAddress: deliveryAddress,
			TotalYen:        totalYen,
			CreatedAt:       createdAt,
			Items:           make([]GetOrdersQueryItemResponse, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, orderIndex); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the item lines of every listed order in one batched query
// and attaches them to their owning order.
func (h GetOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetOrdersQueryResponse,
	orderIndex map[kernel.UUID]int,
) error {
	orderIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name_snapshot,
			price_yen_per_kg_snapshot,
			quantity_kg,
			total_yen
		FROM order_items
		WHERE order_id::text = ANY(?::text[])
		ORDER BY name_snapshot
	`, pq.Array(orderIDs)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawOrderID             uuid.UUID
			rawProductID           *uuid.UUID
			name                   string
			price, quantity, total decimal.Decimal
		)

		if err = rows.Scan(&rawOrderID, &rawProductID,
			&name, &price, &quantity, &total); err != nil {
			return err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return idErr
		}

		var productID *kernel.UUID
		if rawProductID != nil {
			pID, pErr := kernel.UUIDFromBytes((*rawProductID)[:])
			if pErr != nil {
				return pErr
			}
			productID = &pID
		}

		idx, found := orderIndex[orderID]
		if !found {
			continue
		}
		orders[idx].Items = append(orders[idx].Items, GetOrdersQueryItemResponse{
			ProductID:     productID,
			Name:          name,
			PriceYenPerKg: price,
			QuantityKg:    quantity,
			TotalYen:      total,
		})
	}

	return rows.Err()
}
