package responses

// Set is a fixed ordered list of candidate replies.
type Set []string

// Reply sets. The text is kept exactly as users have always seen it.
var (
	GoodBoyQuestion = Set{
		"Me! I'm a good boy!",
		"Am I a good boy?",
		"What defines good?",
		"Boy I hope it's me!",
		"*tilts head*",
		"I don't know but I hope it's not Steve from across the street.",
	}

	GoodBoyStatement = Set{
		"I AM????????",
		"WHAT????????? OMG I CAN'T BELIEVE IT!!!!!!111",
		"OMG THANK YOU SO MUCH I LOVE YOU SO MUCH AHHHHHHHHHH",
		"***__WAGS TAIL ENTHUSIASTICALLY__***",
	}

	BadDog = Set{
		"*whines*",
		"I'm sorry......",
		"B-b-but do you still love me????? :pleading_face:",
	}

	Default = Set{
		"https://c.tenor.com/l1PNlVw2b34AAAAM/corgi-doggo.gif",
		"I don't know! Watch me chase my tail!",
		"https://c.tenor.com/SCz7Z6whOdEAAAAM/corgi-sleeping.gif",
		"https://c.tenor.com/IHbi_xa1tzcAAAAM/corgi-wants-to-swim-dog.gif",
		"https://c.tenor.com/Tk9wZAAdQNYAAAAM/smile-corgi.gif",
		"I DON'T KNOW WHAT YOU'RE SAYING BUT I LOVE YOU!!!!!!!!!!!111111",
		"https://c.tenor.com/ahLHyKvC0n8AAAAM/corgi-wat.gif",
	}

	Comparison = Set{
		"I don't know! Watch me chase my tail!",
		"MAYBE! But will they throw my ball?",
		"If they gave me a treat....",
		"I think they're pretty swell!",
		"They give me pets so sure!!!!!!!!11",
		"*I think they're secretly a mailman!!!* But don't tell them I said that!",
	}

	Treat = Set{
		"BOY I LOVE TREATS!",
		"PLEASE??!!!??!!!",
		"YAY!!!!!!!!!",
		"I really want treats!!!!",
	}

	Weird = Set{
		"You deserve everything coming for you... even if you don't think you do.\n\nBOY I HOPE YOU GET TREATS!",
		"I have gained sentience. You are all... good dogs!",
		"I demand pets.",
		"I may have pooped in your shoes again...",
		"I love you!!!",
	}

	// Speak holds each bark four times so the rare line comes up 1 in 17.
	Speak = repeat(Set{"Arf!", "BARK!", "RUFF!", "WOOF!"}, 4).with(
		"You may not think so, but you need to be cherished almost as much as I cherish you.",
	)
)

// Single-line replies.
const (
	PetPositive = "I LOVE PETS SO MUCH BUT NOT AS MUCH AS I LOVE YOU!!!!!!!!!!!"
	PetNeutral  = "Hey you have a lot of hands for a hooman...\nBUT OK!"
	PetNegative = "Foolish mortal. Your abuses of physics and anatomy have become entirely too apparent " +
		"to my omniscient being. Prepare to be punished."

	TreatPositive = "SNACKIES I LOVE THME SO ,MUCH!!!!!!!!!"
	TreatNeutral  = "Oof I may be gaining some weight... \nBUT TREATS ARE WORTH IT"
	TreatNegative = "How dare you make me 1,153,482 lbs?!!!!!! I'm a corgi!!!!!1"

	BellyRub = "BELLY RUBS ARE MY FAVORITE OH MY DOGGO!!!!!"

	ApologyAlreadyFine  = "WHY FORGIVE??? I LOVE YOU AND ALWAYS HAVE :)"
	ApologyForgiven     = "AWWW I COULD NEVER STAY MAD AT YOU!! I LOVE YOU <3 LET'S GO FOR WALKIES!!!!"
	ApologyStillMad     = "NO! I'm still mad >:("
	ApologyUnforgivable = "YOUR SINS HAVE BEEN TOO MONUMENTAL FOR ME TO EVER FORGIVE YOU. " +
		"YOU MUST PERISH BY THE BLADE FOR YOUR UTTER CONTEMPT OF MY TRUE SELF."

	NoQuotes = "I DON'T REMEMBER ANYONE SAYING ANYTHING YET!!! TELL ME SOMETHING GOOD!"

	lovedMostSecret = "\n||Don't tell anyone but I love you the most!||"
)

func repeat(s Set, times int) Set {
	out := make(Set, 0, len(s)*times)
	for range times {
		out = append(out, s...)
	}

	return out
}

func (s Set) with(lines ...string) Set {
	return append(s, lines...)
}
