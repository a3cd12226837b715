package domain

import "time"

// Category representa uma categoria de produtos do cardápio
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product representa um produto vendido pela loja
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	CategoryID int64   `json:"category_id"`
}

// Customer representa um cliente cadastrado
type Customer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PaymentMethod representa uma forma de pagamento aceita pela loja
type PaymentMethod struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// SaleLine representa um item vendido (a tabela fato do ledger).
// TransactionID agrupa os itens de uma mesma compra e pode ser nulo
// para vendas antigas registradas sem agrupamento; métricas "por
// transação" consideram apenas linhas com TransactionID preenchido.
type SaleLine struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"product_id"`
	Quantity        int64     `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	TotalAmount     float64   `json:"total_amount"`
	SoldAt          time.Time `json:"sold_at"`
	CustomerID      int64     `json:"customer_id"`
	PaymentMethodID int64     `json:"payment_method_id"`
	TransactionID   *string   `json:"transaction_id,omitempty"`
}
