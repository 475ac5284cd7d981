package game

// DefaultScenarios 默认剧情内容（EKEDC反欺诈宣传周挑战）
// 场景0为入口，场景11为终结节点，路径与分值由内容表驱动。
func DefaultScenarios() []*ScenarioNode {
	return []*ScenarioNode{
		{
			ID:          0,
			Title:       "Monday Morning at EKEDC",
			Description: "It's 8:00 AM on Monday. You arrive at the office with your morning coffee when your colleague from Customer Experience rushes over, looking concerned. 'I need your help,' she says urgently. 'I've been reviewing weekend activity and something's very wrong with Account #78452. There were 15 failed login attempts between 2-3 AM, then suddenly a successful login from an IP address in another state. Within minutes, they changed the email, phone number, and requested the billing address be updated to a completely different location.' She shows you her screen - the account belongs to a high-value commercial customer who's been with EKEDC for years. What's your next move?",
			Image:       "🌅",
			Choices: []Choice{
				{
					Text:      "Act immediately - suspend the account and call an emergency meeting with IT, Commercial, and Customer Experience",
					Points:    25,
					Feedback:  "Excellent leadership! Your quick action prevented a major breach. The fraudster was attempting to redirect payments.",
					NextScene: 1,
					Path:      PathVigilant,
				},
				{
					Text:      "Contact the customer directly using the phone number on file to verify these changes",
					Points:    20,
					Feedback:  "Smart verification approach! The customer confirms they made NO changes. Crisis averted, but speed is crucial in fraud cases.",
					NextScene: 1,
					Path:      PathVigilant,
				},
				{
					Text:      "Set up monitoring on the account to gather more evidence before acting",
					Points:    5,
					Feedback:  "While evidence is important, delays give fraudsters time to act. The account was accessed again an hour later.",
					NextScene: 2,
					Path:      PathDelayed,
				},
				{
					Text:      "Assume the customer is traveling for business and approve the changes",
					Points:    -10,
					Feedback:  "Dangerous assumption! The fraudster successfully redirected the next payment before the real customer noticed. Never assume.",
					NextScene: 2,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          1,
			Title:       "The Web Spreads Wider",
			Description: "Your swift action on the suspicious account paid off. Within an hour, IT flags something alarming: the same attack pattern has been attempted on 12 other high-value accounts overnight. Then at 10:30 AM, employees across multiple departments start reporting something else - they're receiving official-looking emails from 'management@ekkedc.com' (note the double 'k'). The emails claim there's an emergency audit and request employees to verify their login credentials by clicking a link. The emails even include the CEO's digital signature. Your phone rings - it's Corp Comms, IT, and HR on a conference call. Everyone's looking to your department for guidance. The emails are still arriving. What do you do?",
			Image:       "🚨",
			Choices: []Choice{
				{
					Text:      "Lead the response - immediately send company-wide alert, coordinate with IT to block the domain, and set up a fraud response team",
					Points:    35,
					Feedback:  "Outstanding crisis management! Your coordinated response stopped 89% of employees from clicking the link. True leadership!",
					NextScene: 3,
					Path:      PathHero,
				},
				{
					Text:      "Work with IT to block the emails while HR drafts a warning for all departments",
					Points:    25,
					Feedback:  "Good collaborative approach. The warning went out within 30 minutes, limiting the damage significantly.",
					NextScene: 3,
					Path:      PathVigilant,
				},
				{
					Text:      "Alert only your department first to protect your team, then coordinate with others",
					Points:    10,
					Feedback:  "Your team is safe, but 23 employees in other departments clicked the link in those crucial minutes. Fraud requires company-wide action!",
					NextScene: 4,
					Path:      PathDelayed,
				},
				{
					Text:      "Forward the email to IT and wait for their security team to handle it",
					Points:    5,
					Feedback:  "IT was overwhelmed with reports. By the time they responded, the fraudsters had collected credentials from multiple employees.",
					NextScene: 4,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          2,
			Title:       "A Costly Hesitation",
			Description: "Your hesitation had consequences. By the time you acted, the fraudster had already moved money and compromised two more accounts. Now at 11:00 AM, Finance calls with urgent news: they've discovered something during their investigation of the breach. For the past 6 months, small discrepancies have appeared in payments to 'Premier Electric Supplies Ltd' - a recurring vendor. The invoices show amounts between ₦185,000-₦245,000, always just under the ₦250,000 threshold that requires additional approval. What's suspicious: all invoices are from the same vendor, the contact person shares a surname with a former employee who left 8 months ago, and payment records show subtle differences from the original purchase orders. Finance is already stressed from the earlier breach. This could be related. How do you proceed?",
			Image:       "⚠️",
			Choices: []Choice{
				{
					Text:      "Escalate immediately - this could be connected to the morning's attack. Rally Finance, HR, Legal, and PPR for a full investigation",
					Points:    30,
					Feedback:  "Sharp thinking! Your instinct was right - the same fraud ring was behind both attacks. Connecting the dots saved EKEDC millions.",
					NextScene: 5,
					Path:      PathRedemption,
				},
				{
					Text:      "Request all documentation and launch a thorough audit of the vendor with Finance and PPR",
					Points:    25,
					Feedback:  "Methodical approach. The audit reveals it's definitely fraud, but the investigation takes 3 days. Time matters in fraud cases.",
					NextScene: 5,
					Path:      PathVigilant,
				},
				{
					Text:      "Have Finance request meeting with the vendor to clarify the discrepancies",
					Points:    5,
					Feedback:  "The vendor contact disappears immediately after your meeting request. Never tip off suspected fraudsters!",
					NextScene: 6,
					Path:      PathCompromised,
				},
				{
					Text:      "Focus only on the high-value accounts from this morning - this vendor issue seems separate and smaller",
					Points:    -15,
					Feedback:  "Critical mistake! The vendor fraud was part of the same operation. Treating them separately let the fraudsters cover their tracks.",
					NextScene: 6,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          3,
			Title:       "A Pattern Emerges",
			Description: "Your decisive action this morning has positioned you as a fraud prevention leader at EKEDC. It's now 2:00 PM, and HSE approaches with concerning information that connects to today's events. During routine wellness check-ins, they noticed behavioral changes in three employees across different departments over the past month: unusual stress, working very late hours, and seeming distracted. Today, IT's forensic analysis of the phishing attack reveals that these same three employees' credentials were compromised. Even more alarming: their database access logs show they've been querying customer financial data, account details, and billing information outside normal work hours for the past two weeks. One is from Finance, one from IT, and one from Commercial. HSE believes they may be victims of coercion - possibly threatened by the fraud ring. How do you handle this delicate situation?",
			Image:       "🔍",
			Choices: []Choice{
				{
					Text:      "Convene immediate crisis team with HR, HSE, Legal, and IT - suspend access while offering employee support and protection resources",
					Points:    45,
					Feedback:  "Exemplary leadership! Your balanced approach secured the data while helping the coerced employees. All three were victims of extortion and testified against the fraud ring.",
					NextScene: 7,
					Path:      PathHero,
				},
				{
					Text:      "Coordinate with IT to suspend access, then work with HR and HSE to understand each situation before taking further action",
					Points:    35,
					Feedback:  "Solid crisis management. Security first, but with compassion. Two employees were indeed being extorted and provided crucial evidence.",
					NextScene: 7,
					Path:      PathVigilant,
				},
				{
					Text:      "Immediately report to Legal and recommend termination - we can't risk further data breaches",
					Points:    10,
					Feedback:  "Too harsh. Investigation revealed all three were being blackmailed. Terminating them lost valuable witnesses and damaged EKEDC's reputation.",
					NextScene: 8,
					Path:      PathDelayed,
				},
				{
					Text:      "Confront the employees directly to get their side of the story",
					Points:    -10,
					Feedback:  "Dangerous move! One panicked and deleted evidence. The fraud ring's leaders escaped. Never confront suspected compromised individuals without security measures.",
					NextScene: 8,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          4,
			Title:       "Damage Control Mode",
			Description: "The morning's slow response has cost EKEDC - 23 employee credentials were compromised. It's now 3:00 PM and you're in damage control. During the emergency meeting, EFR drops a bombshell: they've been investigating a separate issue that might be connected. Over the past two months, Technical Services has flagged unusual patterns at 8 commercial locations - all show signs of sophisticated meter tampering, but something's different this time. The tampered meters were replaced with legitimate-looking 'upgraded' devices that are actually bypass systems. Field teams discovered business cards at several locations advertising 'Energy Cost Optimization Services by PowerSmart Solutions.' When Commercial checked, they found this company has been cold-calling EKEDC customers, offering to 'reduce electricity costs by up to 60%' through 'technical optimization.' Several customers have already signed up. This could be a large-scale organized operation. Given today's multiple security failures, how do you respond?",
			Image:       "⚡",
			Choices: []Choice{
				{
					Text:      "This is bigger than we thought - coordinate massive response with EFR, Commercial, Technical Services, Legal, and law enforcement immediately",
					Points:    40,
					Feedback:  "You turned the day around! Your comprehensive response dismantled the entire fraud operation. Law enforcement arrested 12 people. Redemption achieved!",
					NextScene: 9,
					Path:      PathRedemption,
				},
				{
					Text:      "Work with EFR and Technical Services to identify all affected sites and document everything for Legal action",
					Points:    30,
					Feedback:  "Good recovery strategy. Evidence gathering takes 5 days, but your thoroughness leads to successful prosecution.",
					NextScene: 9,
					Path:      PathVigilant,
				},
				{
					Text:      "Focus on recovering losses from the customers who used this service",
					Points:    15,
					Feedback:  "Too narrow. While you recovered some funds, the fraud operation continued targeting more customers. Think bigger!",
					NextScene: 10,
					Path:      PathDelayed,
				},
				{
					Text:      "Issue warnings to customers and let EFR monitor for new cases",
					Points:    10,
					Feedback:  "Reactive approach. The operation grew larger. Passive monitoring isn't enough when facing organized criminal activity.",
					NextScene: 10,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          5,
			Title:       "The Conspiracy Unfolds",
			Description: "Your investigation has revealed something major - this morning's cyberattacks, the vendor fraud, and employee coercion are all connected. It's 4:00 PM and Legal has called an emergency executive meeting. The former employee listed on the vendor invoices was fired 8 months ago for 'performance issues' but now you've discovered they were actually caught trying to access restricted customer data. They were escorted out before a full investigation was completed. Now they're running a sophisticated fraud ring targeting EKEDC from multiple angles. The big question: Are there more compromised employees still inside EKEDC? Corp Comms is ready to make a public statement, but Legal is concerned about tipping off remaining accomplices. HSE has identified 5 more employees showing stress indicators. IT has found suspicious access patterns from 7 employee accounts. The executives are looking to your department to recommend the next move. What's your strategy?",
			Image:       "🕵️",
			Choices: []Choice{
				{
					Text:      "Launch Operation Clean House - covert investigation by trusted team from Legal, IT, HSE, and HR while continuing normal operations",
					Points:    50,
					Feedback:  "Masterful strategy! Your covert operation identified 4 more compromised employees and led to the arrest of the entire fraud ring, including the former employee mastermind. EKEDC is secure!",
					NextScene: 11,
					Path:      PathHero,
				},
				{
					Text:      "Implement enhanced monitoring on all flagged accounts while HR and HSE carefully interview potentially compromised employees",
					Points:    40,
					Feedback:  "Balanced and effective. The investigation takes 2 weeks but successfully identifies all bad actors without causing panic. Well managed!",
					NextScene: 11,
					Path:      PathVigilant,
				},
				{
					Text:      "Recommend company-wide system lockdown and mandatory security training for all employees before proceeding",
					Points:    20,
					Feedback:  "Safety-first approach, but the lockdown tipped off the remaining accomplices. Two destroyed evidence, one fled. Sometimes subtlety wins.",
					NextScene: 11,
					Path:      PathDelayed,
				},
				{
					Text:      "Go public immediately with Corp Comms statement to warn customers and employees about the fraud ring",
					Points:    10,
					Feedback:  "Transparency is good, but timing matters. The public statement panicked the market, damaged EKEDC's reputation, and the fraudsters went underground.",
					NextScene: 11,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          6,
			Title:       "The Fraud Ring Strikes",
			Description: "Earlier mistakes have consequences. It's 4:30 PM and the situation is spiraling. The vendor fraud you delayed investigating? They just attempted to process a ₦15 million 'emergency infrastructure payment' using forged approvals. Finance caught it only by luck when someone noticed the approval signature didn't match. Now Commercial reports that 'PowerSmart Solutions' - the company offering meter tampering services - has expanded operations. They've compromised 23 customer sites in the past week alone. EFR estimates losses at ₦45 million. Worse: Anonymous whistleblower tips are flooding in claiming there are EKEDC employees helping from the inside. Corp Comms is getting press inquiries about 'security issues at EKEDC.' Social media is lighting up with customer complaints. The executives are in crisis mode and need your department to help salvage this situation. Can you still turn this around?",
			Image:       "🔥",
			Choices: []Choice{
				{
					Text:      "Request emergency powers - assemble crisis team from all departments, bring in external security consultants, and coordinate with law enforcement",
					Points:    45,
					Feedback:  "Crisis leadership at its finest! Your emergency response contained the situation. External experts helped identify systemic weaknesses. It's not perfect, but you saved EKEDC from catastrophic loss!",
					NextScene: 11,
					Path:      PathRedemption,
				},
				{
					Text:      "Focus resources on the ₦15 million attempted theft and the compromised meters - work with Legal to prosecute",
					Points:    30,
					Feedback:  "You're addressing symptoms, not causes. These threats are neutralized but the underlying fraud ring remains intact, planning their next attack.",
					NextScene: 11,
					Path:      PathDelayed,
				},
				{
					Text:      "Coordinate damage control with Corp Comms while IT and EFR handle their respective issues",
					Points:    20,
					Feedback:  "Fragmented response to a coordinated attack. Each department works in isolation. Some issues get resolved, others worsen. Fraud prevention requires unity!",
					NextScene: 11,
					Path:      PathCompromised,
				},
				{
					Text:      "Recommend hiring external investigators to review everything while normal operations continue",
					Points:    15,
					Feedback:  "External help arrives too late. While investigators review historical data, the fraud ring makes three more successful attacks. Speed matters!",
					NextScene: 11,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          7,
			Title:       "Breaking the Ring",
			Description: "Your handling of the compromised employees was perfect - they're now cooperating fully. It's 5:30 PM and their testimony has provided the breakthrough needed. The mastermind behind everything is the former employee, but he's not working alone. He partnered with organized criminals running fraud operations across multiple utility companies. Their method: infiltrate companies using social engineering, compromise employees through coercion, install accomplices in vendor relationships, and deploy technical teams to tamper with infrastructure. They've hit 6 other power companies in Nigeria. EKEDC was supposed to be their biggest score yet. Legal has enough evidence to prosecute, but there's a bigger decision: The fraud ring doesn't know you've identified all their accomplices. You could arrest them now and stop EKEDC's losses immediately. Or you could run a sting operation with law enforcement to catch the entire network, including their operations at other companies. It's risky - they might detect it and flee. But it could shut down the whole operation permanently. What's your recommendation?",
			Image:       "⚖️",
			Choices: []Choice{
				{
					Text:      "Coordinate with law enforcement for a simultaneous multi-company sting operation - let's end this fraud ring permanently",
					Points:    55,
					Feedback:  "LEGENDARY! Your sting operation led to arrests across 4 states. 47 people arrested, ₦890 million in fraud prevented across the entire power sector. You're a national fraud prevention hero!",
					NextScene: 11,
					Path:      PathHero,
				},
				{
					Text:      "Work with law enforcement on EKEDC sting while alerting other utility companies to investigate their operations",
					Points:    45,
					Feedback:  "Excellent collaborative approach! EKEDC operation is successful, and your intelligence helps other companies. The fraud ring is dismantled. Outstanding work!",
					NextScene: 11,
					Path:      PathHero,
				},
				{
					Text:      "Arrest the known accomplices immediately and let law enforcement handle the broader network investigation",
					Points:    30,
					Feedback:  "Safe choice. EKEDC is secured and losses stop immediately. However, the masterminds escape and set up operations elsewhere. Sometimes you need to take calculated risks.",
					NextScene: 11,
					Path:      PathVigilant,
				},
				{
					Text:      "Secure EKEDC first with immediate arrests, then provide evidence to authorities for broader investigation",
					Points:    35,
					Feedback:  "EKEDC-first approach works. Your arrests make news, warning off the broader network. They disperse before law enforcement can act, but EKEDC is safe.",
					NextScene: 11,
					Path:      PathVigilant,
				},
			},
		},
		{
			ID:          8,
			Title:       "Picking Up the Pieces",
			Description: "Today's been rough. Your earlier decisions have had mixed results - some threats neutralized, others still active. It's now 6:00 PM and you're in a strategy meeting with department heads trying to prevent further losses. During the meeting, something unexpected happens: the anonymous whistleblower who's been sending tips about insider involvement calls the fraud hotline and asks specifically for you by name. They say they'll only speak to your department. Security patches them through. The voice is disguised, but they provide specific information: 'The vendor fraud, the phishing attack, the meter tampering - they're all connected. The person coordinating it from inside EKEDC is in a position of trust. They're planning something big this Friday - a data breach and simultaneous financial theft. I know because they tried to recruit me last month. I can provide evidence, but I need protection. I won't give my name until I know I'm safe.' The room goes silent. Everyone's looking at you. How do you handle this critical moment?",
			Image:       "📞",
			Choices: []Choice{
				{
					Text:      "Immediately establish whistleblower protection protocol with Legal and HR, guarantee anonymity, and create secure channel for evidence transfer",
					Points:    50,
					Feedback:  "Perfect response! Your protection measures work. The whistleblower provides evidence that stops Friday's attack and reveals the inside coordinator. You've redeemed today's earlier mistakes!",
					NextScene: 11,
					Path:      PathRedemption,
				},
				{
					Text:      "Work with Legal to offer formal whistleblower protection while IT sets up secure evidence submission process",
					Points:    40,
					Feedback:  "Good procedural approach. The whistleblower eventually trusts the process and comes forward. Friday's attack is prevented, though barely. You got there in the end!",
					NextScene: 11,
					Path:      PathVigilant,
				},
				{
					Text:      "Try to convince the whistleblower to reveal their identity now, promising protection afterward",
					Points:    15,
					Feedback:  "Trust is earned, not demanded. The whistleblower hangs up. Without their evidence, Friday's attack succeeds partially. Always protect sources first!",
					NextScene: 11,
					Path:      PathCompromised,
				},
				{
					Text:      "Have IT trace the call while keeping them talking to identify the whistleblower",
					Points:    -20,
					Feedback:  "Huge mistake! The whistleblower realizes what you're doing and disappears. Your betrayal costs EKEDC millions on Friday. Whistleblowers must be protected, not hunted!",
					NextScene: 11,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          9,
			Title:       "Operation PowerGuard",
			Description: "Your decisive action on the meter tampering operation has impressed everyone. It's 6:00 PM and law enforcement has joined the emergency response team. They reveal that PowerSmart Solutions is under investigation in three other states for similar operations, but they've never been able to catch them in the act. You have something they don't: active fraud in progress, evidence on the ground, and the element of surprise. The Commercial team has identified that the fraud ring is scheduling 'installations' at 12 more EKEDC customer sites over the next 48 hours. Law enforcement proposes an ambitious plan: let the installations proceed under surveillance, catch the technicians in the act, then use them to roll up the entire organization. It means allowing fraud to happen in the short term to stop it permanently. EFR is concerned about the losses. Commercial worries about customer safety. Legal sees the prosecution value. Technical Services can provide covert monitoring. This is your call - you've led the fraud response all day. What's your decision?",
			Image:       "🎯",
			Choices: []Choice{
				{
					Text:      "Green-light the operation - coordinate surveillance with EFR, Technical Services, and law enforcement. Let's catch them all.",
					Points:    55,
					Feedback:  "SPECTACULAR! Operation PowerGuard succeeds flawlessly. All 12 'technicians' arrested, their warehouse raided, masterminds captured. Your bold decision saved the entire power sector from this fraud ring!",
					NextScene: 11,
					Path:      PathHero,
				},
				{
					Text:      "Modified approach - allow 3-4 installations under surveillance to gather evidence, then shut down the rest immediately",
					Points:    45,
					Feedback:  "Smart balanced strategy! You get enough evidence for prosecution while limiting customer exposure. The fraud ring's operations are permanently shut down. Excellent judgment!",
					NextScene: 11,
					Path:      PathVigilant,
				},
				{
					Text:      "Stop all scheduled installations immediately, secure current evidence, and let law enforcement build their case from what we have",
					Points:    30,
					Feedback:  "Conservative but reasonable. The technicians you catch provide some intelligence, but the masterminds escape. The operation moves to another state. EKEDC is safe though.",
					NextScene: 11,
					Path:      PathVigilant,
				},
				{
					Text:      "This is too risky - focus on protecting EKEDC customers and recovering losses. Law enforcement can handle the bigger investigation separately",
					Points:    20,
					Feedback:  "Risk-averse choice. EKEDC's immediate threat is contained, but the fraud ring continues operating elsewhere. Sometimes you need to think beyond just your company.",
					NextScene: 11,
					Path:      PathDelayed,
				},
			},
		},
		{
			ID:          10,
			Title:       "The Final Test",
			Description: "It's 7:00 PM. What started as a normal Monday turned into a masterclass in fraud prevention - or a cautionary tale, depending on the choices you made. The day's events are winding down, but there's one last critical decision. IT's forensic analysis has identified the source of this morning's coordinated attack: a sophisticated phishing campaign targeted specifically at EKEDC employees started 3 months ago. The attackers spent months gathering intelligence about company operations, internal systems, and key personnel. They studied EKEDC's fraud prevention protocols and specifically designed attacks to exploit gaps. The most concerning discovery: They accessed an internal document from 8 months ago titled 'Security Vulnerabilities Assessment' that outlined weaknesses in EKEDC's fraud prevention systems. That document was never supposed to leave the company. Only 12 people had access to it. One of them is in this room right now. Corp Comms wants to release a statement about today's events. Legal wants to keep everything confidential during investigation. The executives are divided. Given everything that's happened today, how do you recommend EKEDC move forward?",
			Image:       "🌙",
			Choices: []Choice{
				{
					Text:      "Full transparency - release comprehensive statement about the attacks, what was learned, and how EKEDC is strengthening security. Show the power sector how to defend against these threats",
					Points:    45,
					Feedback:  "Courageous leadership! Your transparency turns EKEDC's trial by fire into an industry-wide teaching moment. Other companies strengthen their defenses using your lessons. True fraud prevention is sharing knowledge!",
					NextScene: 11,
					Path:      PathHero,
				},
				{
					Text:      "Balanced approach - acknowledge the incident publicly while keeping investigative details confidential. Focus on what customers and employees need to know",
					Points:    40,
					Feedback:  "Wise balance of transparency and security. Your statement maintains trust while protecting the ongoing investigation. Professional crisis communication!",
					NextScene: 11,
					Path:      PathVigilant,
				},
				{
					Text:      "Keep it confidential for now - complete the investigation, strengthen security, then share lessons learned after everything is resolved",
					Points:    25,
					Feedback:  "Cautious approach. Investigation proceeds smoothly, but rumors and speculation damage EKEDC's reputation in the interim. Sometimes transparency prevents worse speculation.",
					NextScene: 11,
					Path:      PathDelayed,
				},
				{
					Text:      "Minimal disclosure - release basic statement that security incident occurred and was contained. Keep all details internal",
					Points:    15,
					Feedback:  "Too secretive. The lack of information creates customer anxiety and media speculation. EKEDC appears to be hiding something worse. Secrecy often backfires in crisis situations.",
					NextScene: 11,
					Path:      PathCompromised,
				},
			},
		},
		{
			ID:          11,
			Title:       "The Day's End - Your Legacy at EKEDC",
			Description: "It's 8:00 PM. The sun has set on an extraordinary day at EKEDC. What began as a routine Monday morning transformed into a comprehensive battle against a sophisticated fraud operation. As you reflect on the day's events, one thing is crystal clear: Fraud prevention truly is a team effort, and today proved that those who refuse to sit on the sidelines can make all the difference. Your decisions throughout the day didn't just impact EKEDC - they influenced the entire Nigerian power sector's approach to fraud prevention. The question now is: What kind of impact did you make?",
			Image:       "🏆",
			Choices:     []Choice{},
		},
	}
}

// NewDefaultGraph 用默认剧情内容构建剧情图
func NewDefaultGraph() (*Graph, error) {
	return NewGraph(DefaultScenarios())
}
