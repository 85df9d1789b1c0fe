package risk

import "fmt"

// Factor is one independently evaluated contribution to the risk score.
// Negative impacts reduce risk. JSON tags match the risk-check API contract.
type Factor struct {
	Name        string `json:"factor"`
	Impact      int    `json:"impact"`
	Description string `json:"description"`
}

// Factor names. Each name appears at most once per assessment.
const (
	FactorHighAmount        = "HIGH_AMOUNT"
	FactorUnusualItemCount  = "UNUSUAL_ITEM_COUNT"
	FactorExtremeItemCount  = "EXTREME_ITEM_COUNT"
	FactorBulkSingleItem    = "BULK_SINGLE_ITEM"
	FactorExtremeBulkSingle = "EXTREME_BULK_SINGLE"
	FactorMultipleStores    = "MULTIPLE_STORES"
	FactorSuspiciousUA      = "SUSPICIOUS_USER_AGENT"
	FactorNewPaymentMethod  = "NEW_PAYMENT_METHOD"

	FactorOldSessionToken  = "OLD_SESSION_TOKEN"
	FactorAgedSessionToken = "AGED_SESSION_TOKEN"

	FactorConcurrentSessions         = "CONCURRENT_SESSIONS"
	FactorModerateConcurrentSessions = "MODERATE_CONCURRENT_SESSIONS"

	FactorFailedLogins     = "FAILED_LOGIN_ATTEMPTS"
	FactorSomeFailedLogins = "SOME_FAILED_LOGIN_ATTEMPTS"
	FactorFewFailedLogins  = "FEW_FAILED_LOGIN_ATTEMPTS"

	FactorNewAccount  = "NEW_ACCOUNT"
	FactorTrustedRole = "TRUSTED_ROLE"

	FactorGoodHistory     = "GOOD_TRANSACTION_HISTORY"
	FactorModerateHistory = "MODERATE_TRANSACTION_HISTORY"
	FactorPoorHistory     = "POOR_TRANSACTION_HISTORY"

	FactorRecentFailures   = "RECENT_TRANSACTION_FAILURES"
	FactorMultipleFailures = "MULTIPLE_TRANSACTION_FAILURES"
	FactorSingleFailures   = "SINGLE_TRANSACTION_FAILURES"

	FactorMultiplePaymentMethods = "MULTIPLE_PAYMENT_METHODS"
	FactorTwoPaymentMethods      = "TWO_PAYMENT_METHODS"

	// FactorSystemError is the single synthetic factor attached to a
	// fail-safe assessment; it never appears in the catalog below.
	FactorSystemError = "SYSTEM_ERROR"
)

const (
	highAmountThresholdDollars = 300

	unusualItemCountThreshold = 4
	extremeItemCountThreshold = 16
	bulkSingleItemThreshold   = 7
	extremeBulkThreshold      = 20
	multipleStoresThreshold   = 2

	daySeconds  = 24 * 60 * 60
	weekSeconds = 7 * daySeconds

	minHistorySample = 5
)

// tier is one band within a factor definition. The evaluator walks tiers
// top-down and the first band that fires wins, which keeps overlapping
// thresholds mutually exclusive without per-band guard conditions.
type tier struct {
	name     string
	fires    func(v float64) bool
	impact   impactFn
	describe func(v float64, impact int) string
}

// factorDef binds a measured signal to its tiers. The signal returns
// (value, true) when the input is known and not suppressed; unknown
// signals keep every tier silent.
type factorDef struct {
	signal func(tc *TransactionContext) (float64, bool)
	tiers  []tier
}

// catalog drives the whole evaluator. Tuning a factor is a change to this
// table, not to control flow. Definitions for the same signal are split
// (e.g. unusual vs extreme item count) where the severity bands are meant
// to fire together; they share one definition with ordered tiers where
// they are meant to be mutually exclusive (e.g. session token age).
var catalog = []factorDef{
	{
		signal: amountDollars,
		tiers: []tier{{
			name:   FactorHighAmount,
			fires:  above(highAmountThresholdDollars),
			impact: linearRatio(30, highAmountThresholdDollars, 3),
			describe: func(v float64, _ int) string {
				return fmt.Sprintf("Transaction amount $%.2f is above the $%d threshold", v, highAmountThresholdDollars)
			},
		}},
	},
	{
		signal: totalQuantityUnlessSingleItem,
		tiers: []tier{{
			name:   FactorUnusualItemCount,
			fires:  above(unusualItemCountThreshold),
			impact: log2Ratio(35, unusualItemCountThreshold),
			describe: func(v float64, _ int) string {
				return fmt.Sprintf("Unusually high item count: %d items in one transaction", int(v))
			},
		}},
	},
	{
		signal: totalQuantityUnlessSingleItem,
		tiers: []tier{{
			name:   FactorExtremeItemCount,
			fires:  above(extremeItemCountThreshold),
			impact: linearRatio(50, extremeItemCountThreshold, 2),
			describe: func(v float64, _ int) string {
				return fmt.Sprintf("Extreme item count: %d items in one transaction", int(v))
			},
		}},
	},
	{
		signal: maxLineQuantity,
		tiers: []tier{{
			name:   FactorBulkSingleItem,
			fires:  above(bulkSingleItemThreshold),
			impact: log2Ratio(40, bulkSingleItemThreshold),
			describe: func(v float64, _ int) string {
				return fmt.Sprintf("Bulk purchase: %d units of a single product", int(v))
			},
		}},
	},
	{
		signal: maxLineQuantity,
		tiers: []tier{{
			name:   FactorExtremeBulkSingle,
			fires:  above(extremeBulkThreshold),
			impact: linearRatio(45, extremeBulkThreshold, 2),
			describe: func(v float64, _ int) string {
				return fmt.Sprintf("Extreme bulk purchase: %d units of a single product", int(v))
			},
		}},
	},
	{
		signal: storeCount,
		tiers: []tier{{
			name:   FactorMultipleStores,
			fires:  above(multipleStoresThreshold),
			impact: linearAboveOne(25, multipleStoresThreshold),
			describe: func(v float64, _ int) string {
				return fmt.Sprintf("Transaction spans %d different stores", int(v))
			},
		}},
	},
	{
		signal: botLikeUserAgent,
		tiers: []tier{{
			name:   FactorSuspiciousUA,
			fires:  isTrue,
			impact: fixedImpact(15),
			describe: func(_ float64, _ int) string {
				return "User agent matches a known bot, crawler, or CLI tool pattern"
			},
		}},
	},
	{
		signal: newPaymentMethod,
		tiers: []tier{{
			name:   FactorNewPaymentMethod,
			fires:  isTrue,
			impact: fixedImpact(20),
			describe: func(_ float64, _ int) string {
				return "Payment method was not saved to the account before this transaction"
			},
		}},
	},
	{
		signal: sessionTokenAgeSeconds,
		tiers: []tier{
			{
				name:   FactorOldSessionToken,
				fires:  atLeast(2 * daySeconds),
				impact: fixedImpact(20),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("Session token is %.0f hours old", v/3600)
				},
			},
			{
				name:   FactorAgedSessionToken,
				fires:  atLeast(daySeconds),
				impact: fixedImpact(10),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("Session token is %.0f hours old", v/3600)
				},
			},
		},
	},
	{
		signal: concurrentSessions,
		tiers: []tier{
			{
				name:   FactorConcurrentSessions,
				fires:  atLeast(4),
				impact: fixedImpact(25),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d sessions are active for this account", int(v))
				},
			},
			{
				name:   FactorModerateConcurrentSessions,
				fires:  atLeast(3),
				impact: fixedImpact(10),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d sessions are active for this account", int(v))
				},
			},
		},
	},
	{
		signal: failedLogins24h,
		tiers: []tier{
			{
				name:   FactorFailedLogins,
				fires:  atLeast(6),
				impact: fixedImpact(30),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d failed login attempts in the last 24 hours", int(v))
				},
			},
			{
				name:   FactorSomeFailedLogins,
				fires:  atLeast(3),
				impact: fixedImpact(15),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d failed login attempts in the last 24 hours", int(v))
				},
			},
			{
				name:   FactorFewFailedLogins,
				fires:  atLeast(1),
				impact: fixedImpact(5),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d failed login attempts in the last 24 hours", int(v))
				},
			},
		},
	},
	{
		signal: accountAgeSeconds,
		tiers: []tier{{
			name:   FactorNewAccount,
			fires:  func(v float64) bool { return v < weekSeconds },
			impact: fixedImpact(10),
			describe: func(v float64, _ int) string {
				return fmt.Sprintf("Account was created %.1f days ago", v/daySeconds)
			},
		}},
	},
	{
		signal: trustedRole,
		tiers: []tier{{
			name:   FactorTrustedRole,
			fires:  isTrue,
			impact: fixedImpact(-10),
			describe: func(_ float64, _ int) string {
				return "Account holds a trusted marketplace role"
			},
		}},
	},
	{
		signal: historySuccessRate,
		tiers: []tier{
			{
				name:   FactorGoodHistory,
				fires:  atLeast(90),
				impact: fixedImpact(-15),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("Strong transaction history: %.0f%% of past orders succeeded", v)
				},
			},
			{
				name:  FactorPoorHistory,
				fires: func(v float64) bool { return v < 50 },
				impact: func(v float64) int {
					return int(25 * (50 - v) / 50)
				},
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("Poor transaction history: only %.0f%% of past orders succeeded", v)
				},
			},
			{
				name:  FactorModerateHistory,
				fires: func(v float64) bool { return v <= 70 },
				impact: func(v float64) int {
					return int(10 * (70 - v) / 20)
				},
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("Mixed transaction history: %.0f%% of past orders succeeded", v)
				},
			},
		},
	},
	{
		signal: recentFailures1h,
		tiers: []tier{
			{
				name:   FactorRecentFailures,
				fires:  atLeast(5),
				impact: fixedImpact(40),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d failed transactions in the last hour", int(v))
				},
			},
			{
				name:   FactorMultipleFailures,
				fires:  atLeast(3),
				impact: fixedImpact(25),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d failed transactions in the last hour", int(v))
				},
			},
			{
				name:   FactorSingleFailures,
				fires:  atLeast(1),
				impact: fixedImpact(10),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d failed transactions in the last hour", int(v))
				},
			},
		},
	},
	{
		signal: paymentMethodsTried,
		tiers: []tier{
			{
				name:   FactorMultiplePaymentMethods,
				fires:  atLeast(3),
				impact: fixedImpact(25),
				describe: func(v float64, _ int) string {
					return fmt.Sprintf("%d distinct payment methods tried this session", int(v))
				},
			},
			{
				name:   FactorTwoPaymentMethods,
				fires:  atLeast(2),
				impact: fixedImpact(10),
				describe: func(v float64, _ int) string {
					return "Second payment method tried this session"
				},
			},
		},
	},
}

// -----------------------------------------------------------------------------
// Trigger predicates
// -----------------------------------------------------------------------------

func above(threshold float64) func(float64) bool {
	return func(v float64) bool { return v > threshold }
}

func atLeast(threshold float64) func(float64) bool {
	return func(v float64) bool { return v >= threshold }
}

func isTrue(v float64) bool { return v != 0 }

// -----------------------------------------------------------------------------
// Signals
// -----------------------------------------------------------------------------

func amountDollars(tc *TransactionContext) (float64, bool) {
	return float64(tc.TotalAmountCents) / 100, true
}

// totalQuantityUnlessSingleItem suppresses the item-count factors for the
// overwhelmingly common storefront case: one product, quantity one, from a
// real browser. Everything else is measured as-is.
func totalQuantityUnlessSingleItem(tc *TransactionContext) (float64, bool) {
	if len(tc.LineItems) == 1 && tc.LineItems[0].Quantity == 1 && !IsBotLike(tc.Metadata.UserAgent) {
		return 0, false
	}
	return float64(tc.TotalQuantity()), true
}

func maxLineQuantity(tc *TransactionContext) (float64, bool) {
	return float64(tc.MaxLineQuantity()), true
}

func storeCount(tc *TransactionContext) (float64, bool) {
	return float64(tc.StoreCount()), true
}

func botLikeUserAgent(tc *TransactionContext) (float64, bool) {
	if IsBotLike(tc.Metadata.UserAgent) {
		return 1, true
	}
	return 0, true
}

func newPaymentMethod(tc *TransactionContext) (float64, bool) {
	if tc.PaymentMethodID != "" && tc.PaymentMethodIsNew {
		return 1, true
	}
	return 0, true
}

func sessionTokenAgeSeconds(tc *TransactionContext) (float64, bool) {
	if tc.Signals.SessionTokenAgeSeconds == nil {
		return 0, false
	}
	return float64(*tc.Signals.SessionTokenAgeSeconds), true
}

func concurrentSessions(tc *TransactionContext) (float64, bool) {
	if tc.Signals.ConcurrentSessionCount == nil {
		return 0, false
	}
	return float64(*tc.Signals.ConcurrentSessionCount), true
}

func failedLogins24h(tc *TransactionContext) (float64, bool) {
	if tc.Signals.FailedLoginAttempts24h == nil {
		return 0, false
	}
	return float64(*tc.Signals.FailedLoginAttempts24h), true
}

func accountAgeSeconds(tc *TransactionContext) (float64, bool) {
	if tc.Signals.AccountAgeSeconds == nil {
		return 0, false
	}
	return float64(*tc.Signals.AccountAgeSeconds), true
}

func trustedRole(tc *TransactionContext) (float64, bool) {
	role := tc.UserRole
	if tc.Signals.AccountRole != nil {
		role = *tc.Signals.AccountRole
	}
	if role == "vendor" || role == "admin" {
		return 1, true
	}
	return 0, true
}

// historySuccessRate gates the history factors twice: the success rate is
// statistically meaningless below five past orders, and brand new accounts
// are already covered by NEW_ACCOUNT, so their thin history must not also
// score.
func historySuccessRate(tc *TransactionContext) (float64, bool) {
	s := tc.Signals
	if s.PastTransactionSuccessRatePct == nil || s.PastTransactionTotal == nil || s.AccountAgeSeconds == nil {
		return 0, false
	}
	if *s.PastTransactionTotal < minHistorySample || *s.AccountAgeSeconds < weekSeconds {
		return 0, false
	}
	return *s.PastTransactionSuccessRatePct, true
}

func recentFailures1h(tc *TransactionContext) (float64, bool) {
	if tc.Signals.RecentFailures1h == nil {
		return 0, false
	}
	return float64(*tc.Signals.RecentFailures1h), true
}

func paymentMethodsTried(tc *TransactionContext) (float64, bool) {
	if tc.Signals.DistinctPaymentMethodsSession == nil {
		return 0, false
	}
	return float64(*tc.Signals.DistinctPaymentMethodsSession), true
}
