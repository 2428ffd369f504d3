package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cashier = &entity.CurrentUser{ID: "u1", Name: "Sari", BranchName: "Pusat"}

func newCheckout(repo *fakeTransactionRepo) *CheckoutService {
	return NewCheckoutService(NewTransactionService(repo, 10, time.Second), "TOKO MAKMUR")
}

func TestCheckoutService_Preview(t *testing.T) {
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(beras, 1))
	tax := int64(5000)

	preview, err := newCheckout(newFakeTransactionRepo()).Preview(cart, CheckoutInput{Received: 50000, Discount: 10000, Tax: &tax, IsCredit: true})
	require.NoError(t, err)
	assert.Equal(t, int64(65000), preview.Subtotal)
	assert.Equal(t, int64(60000), preview.Total)
	assert.Equal(t, int64(10000), preview.Payment.Due)
	assert.Equal(t, "Rp 10.000", preview.Formatted.Due)
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	_, err := newCheckout(newFakeTransactionRepo()).Checkout(context.Background(), cashier, NewCartStore(), CheckoutInput{})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCheckoutService_CashSale(t *testing.T) {
	repo := newFakeTransactionRepo()
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(beras, 2))

	result, err := newCheckout(repo).Checkout(context.Background(), cashier, cart, CheckoutInput{CustomerName: "Budi", Received: 150000})
	require.NoError(t, err)

	assert.True(t, cart.IsEmpty())
	require.Len(t, repo.created, 1)
	sent := repo.created[0]
	assert.Equal(t, "Pusat", sent.BranchName)
	assert.Equal(t, int64(130000), sent.Total)
	assert.Equal(t, int64(130000), sent.PaidAmount)
	assert.Equal(t, enum.TransactionStatusCompleted, sent.Status)

	assert.Equal(t, int64(20000), result.Payment.Change)
	assert.Equal(t, int64(150000), result.Receipt.Received)
	assert.True(t, strings.HasPrefix(result.ReceiptText, "TOKO MAKMUR\nNo. Transaksi: TRX-001"))
	assert.Contains(t, result.ReceiptText, "Kembalian: Rp 20.000")
}

func TestCheckoutService_KasbonSale(t *testing.T) {
	repo := newFakeTransactionRepo()
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(beras, 1))

	result, err := newCheckout(repo).Checkout(context.Background(), cashier, cart, CheckoutInput{Received: 20000, IsCredit: true})
	require.NoError(t, err)

	sent := repo.created[0]
	assert.True(t, sent.IsCredit)
	assert.Equal(t, int64(20000), sent.PaidAmount)
	assert.Equal(t, enum.TransactionStatusPending, sent.Status)
	assert.Equal(t, enum.PaymentMethodKasbon, sent.PaymentMethod)
	assert.Equal(t, int64(45000), result.Payment.Due)
	assert.Contains(t, result.ReceiptText, "Metode Pembayaran: Kasbon")
}

func TestCheckoutService_UnderpaidCashIsRejected(t *testing.T) {
	repo := newFakeTransactionRepo()
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(beras, 1))

	_, err := newCheckout(repo).Checkout(context.Background(), cashier, cart, CheckoutInput{Received: 1000})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, repo.created)
	assert.False(t, cart.IsEmpty())
}

func TestCheckoutService_FailureKeepsCart(t *testing.T) {
	repo := newFakeTransactionRepo()
	repo.createErr = apperror.NewNetworkError(context.DeadlineExceeded)
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(beras, 1))

	_, err := newCheckout(repo).Checkout(context.Background(), cashier, cart, CheckoutInput{Received: 65000})
	assert.ErrorIs(t, err, apperror.ErrNetwork)
	assert.Equal(t, 1, cart.ItemQuantity("p1"))
}

// blockingTransactionRepo holds Create until released
type blockingTransactionRepo struct {
	*fakeTransactionRepo
	entered chan struct{}
	release chan struct{}
}

func (r *blockingTransactionRepo) Create(ctx context.Context, payload *entity.CreateTransactionPayload) (*entity.Transaction, error) {
	close(r.entered)
	<-r.release
	return r.fakeTransactionRepo.Create(ctx, payload)
}

func TestCheckoutService_AdditionsDuringSubmitStayInCart(t *testing.T) {
	repo := &blockingTransactionRepo{
		fakeTransactionRepo: newFakeTransactionRepo(),
		entered:             make(chan struct{}),
		release:             make(chan struct{}),
	}
	svc := NewCheckoutService(NewTransactionService(repo, 10, time.Second), "TOKO MAKMUR")
	cart := NewCartStore()
	require.NoError(t, cart.AddItem(beras, 1))

	done := make(chan error, 1)
	go func() {
		_, err := svc.Checkout(context.Background(), cashier, cart, CheckoutInput{Received: 65000})
		done <- err
	}()

	<-repo.entered
	require.NoError(t, cart.AddItem(minyak, 2))
	require.NoError(t, cart.AddItem(beras, 1))
	close(repo.release)
	require.NoError(t, <-done)

	require.Len(t, repo.created, 1)
	sent := repo.created[0]
	require.Len(t, sent.Items, 1)
	assert.Equal(t, 1, sent.Items[0].Quantity)
	assert.Equal(t, int64(65000), sent.Subtotal)

	// Only the submitted quantities left the cart
	assert.Equal(t, 1, cart.ItemQuantity("p1"))
	assert.Equal(t, 2, cart.ItemQuantity("p2"))
}
