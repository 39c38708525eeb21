package classify

import "github.com/OrbitCoCo/DuoTang/pkg/duotang/wordset"

// CuratedSets holds the hand-maintained vocabulary used by the heuristic
// classifier. Sets are built once at construction and treated as read-only
// afterwards, so a single instance is safe to share across goroutines.
// Tests substitute small fixture sets through NewCuratedSets.
type CuratedSets struct {
	// Profanity is the offensive-term blocklist, checked first.
	Profanity *wordset.Set

	// AbstractWords are nouns known to name abstractions outright:
	// emotions and states, time spans, actions and processes,
	// occupations and people, relationship and social-construct nouns.
	AbstractWords *wordset.Set

	// AbstractKeywords are generic abstract-concept words (measurements,
	// states, ideas, qualities, processes, legal and academic terms).
	AbstractKeywords *wordset.Set

	// Suffixes are nominalizing endings that usually signal an abstract
	// noun, applied only to words longer than seven characters.
	Suffixes []string

	// SuffixExceptions are concrete words that coincidentally carry one
	// of the abstract suffixes; a whitelisted word is always kept
	// regardless of its ending.
	SuffixExceptions *wordset.Set
}

// NewCuratedSets builds a CuratedSets from raw slices, normalizing all
// entries to lowercase. Nil or empty slices yield empty sets, which makes
// the corresponding check a no-op.
func NewCuratedSets(profanity, abstractWords, abstractKeywords, suffixes, exceptions []string) *CuratedSets {
	return &CuratedSets{
		Profanity:        wordset.FromSlice(profanity),
		AbstractWords:    wordset.FromSlice(abstractWords),
		AbstractKeywords: wordset.FromSlice(abstractKeywords),
		Suffixes:         append([]string(nil), suffixes...),
		SuffixExceptions: wordset.FromSlice(exceptions),
	}
}

// DefaultCuratedSets returns the built-in curated vocabulary.
func DefaultCuratedSets() *CuratedSets {
	return NewCuratedSets(
		defaultProfanity,
		defaultAbstractWords,
		defaultAbstractKeywords,
		defaultAbstractSuffixes,
		defaultSuffixExceptions,
	)
}

var defaultProfanity = []string{
	"ass", "arse", "asshole", "bastard", "bitch", "bollocks", "crap", "cunt",
	"damn", "dick", "fuck", "fucking", "piss", "shit", "slut", "whore",
	"fisting", "floozie", "cock", "coitus",
}

var defaultAbstractSuffixes = []string{
	"tion", "sion", "ment", "ness", "ity", "ty", "ance", "ence", "ship",
	"hood", "dom", "ism", "ization", "isation", "age", "ery", "ry", "cy",
}

// Kept disjoint from the abstract sets: a whitelisted word must always
// come back Keep, and the direct-set checks run before the suffix rule.
var defaultSuffixExceptions = []string{
	"station", "nation", "ration", "portion", "motion",
	"lotion", "potion", "cushion", "fashion", "mansion",
	"passion", "session", "mission", "television",
	"prison", "poison", "bison", "melon", "lemon",
	"demon", "summon", "common", "salmon", "cotton",
	"button", "mutton", "mitten", "kitten", "garden",
	"warden", "burden", "golden", "wooden", "sudden",
}

var defaultAbstractKeywords = []string{
	// measurements and quantities
	"abundance", "amount", "capacity", "degree", "depth", "dimension", "distance",
	"extent", "height", "length", "level", "magnitude", "measure",
	"quantity", "ratio", "scale", "scope", "size", "total", "volume", "weight",
	"width",

	// states and conditions
	"condition", "situation", "state", "status", "circumstance", "position",

	// ideas and concepts
	"concept", "idea", "notion", "theory", "thought", "principle", "hypothesis",
	"philosophy", "ideology",

	// qualities and attributes
	"quality", "characteristic", "feature", "trait", "attribute", "property",

	// processes and systems
	"process", "procedure", "method", "system", "technique", "approach", "strategy",

	// legal and formal terms
	"law", "legislation", "regulation", "rule", "policy", "protocol", "statute",

	// academic and technical
	"analysis", "research", "study", "investigation", "examination", "evaluation",
	"assessment",
}

var defaultAbstractWords = []string{
	// emotions and psychological states
	"ability", "abnormality", "abolishment", "abortion", "abrogation", "absence",
	"abuse", "acceptance", "accomplishment", "accord", "accordance", "accountability",
	"accuracy", "accusation", "achievement", "acknowledgment", "activation", "activity",
	"adaptation", "addiction", "adjustment", "administration", "admission", "adoption",
	"advance", "advancement", "advantage", "advent", "advertising", "advice", "advocacy",
	"affair", "affect", "affinity", "aftermath", "agency", "aggression", "agony",
	"agreement", "aid", "aim", "alarm", "alert", "allegation", "allocation",
	"allowance", "amazement", "ambiguity", "ambition", "amendment", "amnesty",
	"amusement", "analgesia", "anarchy", "anger", "angina", "anguish", "animation",
	"announcement", "answer", "anticipation", "anxiety", "apology", "appeal",
	"appearance", "appellation", "appetite", "applause", "application", "appointment",
	"appreciation", "apprehension", "approach", "appropriation", "approval",
	"argument", "arithmetic", "arrangement", "array", "arrest", "arrival", "arrogance",
	"art", "ascend", "ascent", "aside", "aspect", "aspiration", "assassination",
	"assault", "assembly", "assertion", "assessment", "assignment", "assistance",
	"association", "assumption", "assurance", "asymmetry", "attempt", "attendance",
	"attention", "attenuation", "attitude", "attraction", "attribute", "authentication",
	"authenticity", "authorisation", "authority", "authorization", "autoimmunity",
	"automation", "availability", "avalanche", "average", "aversion", "award",
	"awareness", "awe", "backburn", "backdrop", "background", "backup", "bafflement",
	"bail", "balance", "ban", "bandwidth", "banking", "bankruptcy", "bargain",
	"barrage", "barrier", "baseline", "basics", "basis", "batting", "battle",
	"beat", "beating", "beauty", "beginning", "behalf", "behavior", "behaviour",
	"beheading", "behest", "behold", "being", "belief", "belligerency", "benefit",
	"best-seller", "bestseller", "bet", "betray", "betrayal", "betting", "beverage",
	"beyond", "bias", "bibliography", "bid", "bidding", "billing", "billion",
	"biography", "biology", "biopsy", "birth", "birthday", "bit", "bite", "bitter",
	"bitterness", "blackness", "blame", "blank", "blast", "bleeding", "blend",
	"blessing", "blight", "blindness", "bliss", "blow", "blue", "blunder", "blur",
	"blush", "boast", "boasting", "body", "boil", "bombing", "bond", "bonding",
	"bonus", "booking", "boolean", "boom", "boon", "boost", "border", "bore",
	"boredom", "borrowing", "bother", "bottom", "bottom-line", "bout", "boundary",
	"boycott", "boyhood", "bracket", "brag", "bragging", "brain",
	"brand", "bravery", "breach", "break", "breakdown", "breakfast", "breakpoint",
	"breakthrough", "breath", "breathing", "breed", "breeding", "breeze", "bribery",
	"brief", "briefing", "briefly", "brightness", "brilliance", "brilliant", "brink",
	"broadcast", "brotherhood", "browsing", "brunch", "brushing", "brutality",
	"bubble", "budget", "build", "building", "bulk", "bulletin", "bullying",
	"bump", "bunch", "bundle", "burial", "burn", "burn-out", "burning",
	"burst", "business", "bust", "bustle", "buy", "buyer", "buying", "buzz",

	// time-related abstracts
	"adulthood", "afternoon", "afterlife", "aftershock", "afterthought", "age",
	"century", "childhood", "dawn", "day", "daylight", "deadline",
	"decade", "delay", "duration", "dusk", "era", "eternity", "eve", "evening",
	"event", "forever", "fortnight", "future", "girlhood", "hour", "interval",
	"lifespan", "lifetime", "manhood", "midnight", "millennium", "minute", "moment",
	"month", "morning", "night", "nightfall", "nighttime", "noon", "past",
	"period", "present", "season", "second", "semester", "shift", "spell",
	"springtime", "summertime", "sunrise", "sunset", "teatime", "term", "time",
	"timeframe", "timeline", "tomorrow", "tonight", "twilight", "week", "weekend",
	"while", "wintertime", "year", "yesterday", "youth",

	// actions and processes
	"act", "action", "addition", "alteration", "analysis",
	"attack", "attainment", "assist", "blackmail", "blink", "bounce", "branding",

	// people and occupations
	"academics", "accompanist", "accountant", "achiever", "activist", "actor", "actress",
	"admin", "administrator", "adult", "adviser", "advocate", "agent", "aide",
	"airman", "alien", "allergist", "ally", "ambassador", "analyst", "anarchist",
	"ancestor", "angel", "anesthesiologist", "announcer", "antagonist", "anthropologist",
	"anybody", "anyone", "applicant", "archaeologist", "archer", "architect", "aristocrat",
	"artist", "assistant", "associate", "astronaut", "astronomer", "atheist", "athlete",
	"attendant", "attorney", "audience", "aunt", "author", "baby", "babe", "bachelor",
	"badger", "baker", "ballerina", "balloonist", "bandleader", "bandit", "banker",
	"barber", "bard", "baritone", "bartender", "bather", "batman", "beggar", "beginner",
	"believer", "beneficiary", "bidder", "billionaire", "biographer", "biologist",
	"blacksmith", "blogger", "bloke", "boarder", "boatman", "bodyguard", "bondsman",
	"bookkeeper", "boss", "bouncer", "boy", "boyfriend", "bride", "bridesmaid",
	"brigadier", "broadcaster", "broker", "brother", "brother-in-law", "buddy",
	"builder", "burglar", "businessman", "businesswoman", "butcher", "butler",
	"bystander",

	// relationships and social constructs
	"brotherhood", "citizenship", "comradeship", "companionship", "courtship",
	"fellowship", "fatherhood", "friendship", "kinship", "leadership", "membership",
	"motherhood", "ownership", "parenthood", "partnership", "relationship",
	"sisterhood", "sportsmanship", "stewardship", "apprenticeship", "dictatorship",
	"guardianship", "hardship", "internship", "kingship", "lordship",
	"readership", "scholarship", "sponsorship", "trusteeship",
	"workmanship",
}
