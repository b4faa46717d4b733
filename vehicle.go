package adf

import (
	"strconv"

	"github.com/ukydev/adf/xmltree"
)

// VehicleInterest states what the customer wants to do with the vehicle.
type VehicleInterest string

const (
	InterestBuy       VehicleInterest = "buy"
	InterestLease     VehicleInterest = "lease"
	InterestSell      VehicleInterest = "sell"
	InterestTradeIn   VehicleInterest = "trade-in"
	InterestTestDrive VehicleInterest = "test-drive"
)

var vehicleInterests = []VehicleInterest{InterestBuy, InterestLease, InterestSell, InterestTradeIn, InterestTestDrive}

// VehicleStatus distinguishes new from used stock.
type VehicleStatus string

const (
	StatusNew  VehicleStatus = "new"
	StatusUsed VehicleStatus = "used"
)

var vehicleStatuses = []VehicleStatus{StatusNew, StatusUsed}

// OdometerStatus qualifies the reliability of an odometer reading.
type OdometerStatus string

const (
	OdometerUnknown    OdometerStatus = "unknown"
	OdometerRolledOver OdometerStatus = "rolledover"
	OdometerReplaced   OdometerStatus = "replaced"
	OdometerOriginal   OdometerStatus = "original"
)

var odometerStatuses = []OdometerStatus{OdometerUnknown, OdometerRolledOver, OdometerReplaced, OdometerOriginal}

// OdometerUnits is the unit of an odometer reading. The format's prose
// restricts this to mi/km even though its own examples use "miles"; the
// documented closed set is enforced here.
type OdometerUnits string

const (
	UnitsMiles      OdometerUnits = "mi"
	UnitsKilometers OdometerUnits = "km"
)

var odometerUnits = []OdometerUnits{UnitsMiles, UnitsKilometers}

// VehicleCondition grades the overall condition of a vehicle.
type VehicleCondition string

const (
	ConditionExcellent VehicleCondition = "excellent"
	ConditionGood      VehicleCondition = "good"
	ConditionFair      VehicleCondition = "fair"
	ConditionPoor      VehicleCondition = "poor"
	ConditionUnknown   VehicleCondition = "unknown"
)

var vehicleConditions = []VehicleCondition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionUnknown}

// FinanceMethod is how the customer intends to pay.
type FinanceMethod string

const (
	FinanceCash    FinanceMethod = "cash"
	FinanceFinance FinanceMethod = "finance"
	FinanceLease   FinanceMethod = "lease"
)

var financeMethods = []FinanceMethod{FinanceCash, FinanceFinance, FinanceLease}

// ColorCombination is one interior/exterior color pairing with an
// optional preference rank. Zero-valued fields are omitted from the
// output.
type ColorCombination struct {
	Interior   string
	Exterior   string
	Preference int
}

// ImageTag references a single image of the vehicle. Width and height
// of zero are treated as unspecified.
type ImageTag struct {
	URL     string
	Width   int
	Height  int
	AltText string
}

// Option is a vehicle option or accessory, optionally carrying its own
// price. A Weighting of zero is treated as unspecified.
type Option struct {
	Name             string
	ManufacturerCode string
	Stock            string
	Weighting        int
	Price            *Price
}

// FinanceAmount is one periodic amount or the balance within a finance
// summary.
type FinanceAmount struct {
	Value    string
	Type     string
	Currency string
}

type finance struct {
	method  FinanceMethod
	amounts []FinanceAmount
	balance FinanceAmount
}

// Vehicle describes one vehicle of interest. Year, make and model are
// always present; everything else is optional and accumulates through
// the setters in any order — the output order is fixed regardless.
type Vehicle struct {
	interest      VehicleInterest
	status        VehicleStatus
	id            *ID
	year          string
	make          string
	model         string
	vin           string
	stock         string
	trim          string
	doors         string
	bodyStyle     string
	transmission  string
	odometer      string
	odoStatus     OdometerStatus
	odoUnits      OdometerUnits
	condition     VehicleCondition
	colors        []ColorCombination
	image         *ImageTag
	price         *Price
	priceComments string
	options       []Option
	finance       *finance
	comments      string
}

// NewVehicle creates a Vehicle with its required identity fields.
func NewVehicle(year, make, model string) *Vehicle {
	return &Vehicle{year: year, make: make, model: model}
}

// SetInterest sets what the customer wants to do with the vehicle.
func (v *Vehicle) SetInterest(interest VehicleInterest) (*Vehicle, error) {
	if err := oneOf("vehicle interest", interest, vehicleInterests); err != nil {
		return v, err
	}
	v.interest = interest
	return v, nil
}

// SetStatus marks the vehicle new or used.
func (v *Vehicle) SetStatus(status VehicleStatus) (*Vehicle, error) {
	if err := oneOf("vehicle status", status, vehicleStatuses); err != nil {
		return v, err
	}
	v.status = status
	return v, nil
}

// SetID attaches an identifier.
func (v *Vehicle) SetID(id *ID) *Vehicle {
	v.id = id
	return v
}

// SetVIN sets the vehicle identification number.
func (v *Vehicle) SetVIN(vin string) *Vehicle {
	v.vin = vin
	return v
}

// SetStock sets the dealer stock number.
func (v *Vehicle) SetStock(stock string) *Vehicle {
	v.stock = stock
	return v
}

// SetTrim sets the trim level.
func (v *Vehicle) SetTrim(trim string) *Vehicle {
	v.trim = trim
	return v
}

// SetDoors sets the door count.
func (v *Vehicle) SetDoors(doors string) *Vehicle {
	v.doors = doors
	return v
}

// SetBodyStyle sets the body style.
func (v *Vehicle) SetBodyStyle(bodyStyle string) *Vehicle {
	v.bodyStyle = bodyStyle
	return v
}

// SetTransmission sets the transmission description.
func (v *Vehicle) SetTransmission(transmission string) *Vehicle {
	v.transmission = transmission
	return v
}

// SetOdometer sets the odometer reading. Status and units only appear
// in the output when a reading is present.
func (v *Vehicle) SetOdometer(reading string) *Vehicle {
	v.odometer = reading
	return v
}

// SetOdometerStatus qualifies the odometer reading.
func (v *Vehicle) SetOdometerStatus(status OdometerStatus) (*Vehicle, error) {
	if err := oneOf("odometer status", status, odometerStatuses); err != nil {
		return v, err
	}
	v.odoStatus = status
	return v, nil
}

// SetOdometerUnits sets the unit of the odometer reading.
func (v *Vehicle) SetOdometerUnits(units OdometerUnits) (*Vehicle, error) {
	if err := oneOf("odometer units", units, odometerUnits); err != nil {
		return v, err
	}
	v.odoUnits = units
	return v, nil
}

// SetCondition grades the vehicle's condition.
func (v *Vehicle) SetCondition(condition VehicleCondition) (*Vehicle, error) {
	if err := oneOf("vehicle condition", condition, vehicleConditions); err != nil {
		return v, err
	}
	v.condition = condition
	return v, nil
}

// AddColorCombination appends an interior/exterior color pairing.
func (v *Vehicle) AddColorCombination(combo ColorCombination) *Vehicle {
	v.colors = append(v.colors, combo)
	return v
}

// SetImageTag attaches an image reference.
func (v *Vehicle) SetImageTag(image ImageTag) *Vehicle {
	v.image = &image
	return v
}

// SetPrice attaches a price.
func (v *Vehicle) SetPrice(price *Price) *Vehicle {
	v.price = price
	return v
}

// SetPriceComments sets free-text commentary on the price.
func (v *Vehicle) SetPriceComments(comments string) *Vehicle {
	v.priceComments = comments
	return v
}

// AddOption appends an option or accessory.
func (v *Vehicle) AddOption(option Option) *Vehicle {
	v.options = append(v.options, option)
	return v
}

// SetFinance attaches the finance summary: a method, any number of
// periodic amounts and one balance.
func (v *Vehicle) SetFinance(method FinanceMethod, amounts []FinanceAmount, balance FinanceAmount) (*Vehicle, error) {
	if err := oneOf("finance method", method, financeMethods); err != nil {
		return v, err
	}
	v.finance = &finance{method: method, amounts: amounts, balance: balance}
	return v, nil
}

// SetComments sets free-text comments about the vehicle.
func (v *Vehicle) SetComments(comments string) *Vehicle {
	v.comments = comments
	return v
}

// ToXML projects the vehicle into a <vehicle> node with its children in
// the format's fixed order.
func (v *Vehicle) ToXML() (*xmltree.Node, error) {
	node := xmltree.New("vehicle")
	if v.interest != "" {
		node.SetAttr("interest", string(v.interest))
	}
	if v.status != "" {
		node.SetAttr("status", string(v.status))
	}

	if v.id != nil {
		child, err := v.id.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	appendText(node, "year", v.year)
	appendText(node, "make", v.make)
	appendText(node, "model", v.model)
	appendText(node, "vin", v.vin)
	appendText(node, "stock", v.stock)
	appendText(node, "trim", v.trim)
	appendText(node, "doors", v.doors)
	appendText(node, "bodystyle", v.bodyStyle)
	appendText(node, "transmission", v.transmission)

	if v.odometer != "" {
		odo := xmltree.New("odometer").SetText(v.odometer)
		if v.odoStatus != "" {
			odo.SetAttr("status", string(v.odoStatus))
		}
		if v.odoUnits != "" {
			odo.SetAttr("units", string(v.odoUnits))
		}
		node.Append(odo)
	}

	appendText(node, "condition", string(v.condition))

	for _, combo := range v.colors {
		c := xmltree.New("colorcombination")
		appendText(c, "interiorcolor", combo.Interior)
		appendText(c, "exteriorcolor", combo.Exterior)
		if combo.Preference != 0 {
			appendText(c, "preference", strconv.Itoa(combo.Preference))
		}
		node.Append(c)
	}

	if v.image != nil {
		img := xmltree.New("imagetag").SetText(v.image.URL)
		if v.image.Width != 0 {
			img.SetAttr("width", strconv.Itoa(v.image.Width))
		}
		if v.image.Height != 0 {
			img.SetAttr("height", strconv.Itoa(v.image.Height))
		}
		if v.image.AltText != "" {
			img.SetAttr("alttext", v.image.AltText)
		}
		node.Append(img)
	}

	if v.price != nil {
		child, err := v.price.ToXML()
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}

	appendText(node, "pricecomments", v.priceComments)

	for _, option := range v.options {
		o := xmltree.New("option")
		appendText(o, "optionname", option.Name)
		appendText(o, "manufacturercode", option.ManufacturerCode)
		appendText(o, "stock", option.Stock)
		if option.Weighting != 0 {
			appendText(o, "weighting", strconv.Itoa(option.Weighting))
		}
		if option.Price != nil {
			child, err := option.Price.ToXML()
			if err != nil {
				return nil, err
			}
			o.Append(child)
		}
		node.Append(o)
	}

	if v.finance != nil {
		f := xmltree.New("finance")
		appendText(f, "method", string(v.finance.method))
		for _, amount := range v.finance.amounts {
			f.Append(financeAmountNode("amount", amount))
		}
		f.Append(financeAmountNode("balance", v.finance.balance))
		node.Append(f)
	}

	appendText(node, "comments", v.comments)

	return node, nil
}

func financeAmountNode(tag string, amount FinanceAmount) *xmltree.Node {
	n := xmltree.New(tag).SetText(amount.Value)
	if amount.Type != "" {
		n.SetAttr("type", amount.Type)
	}
	if amount.Currency != "" {
		n.SetAttr("currency", amount.Currency)
	}
	return n
}
